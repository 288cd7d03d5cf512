package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
)

func TestBuildCategoryTree_DosNiveles(t *testing.T) {
	flat := []entity.Category{
		{ID: "c1", Title: "Antenas", Slug: "antenas"},
		{ID: "c2", Title: "Omni", Slug: "omni", ParentID: "c1"},
		{ID: "c3", Title: "Yagi", Slug: "yagi", ParentID: "c1"},
		{ID: "c4", Title: "Cables", Slug: "cables"},
	}

	roots := entity.BuildCategoryTree(flat)

	require.Len(t, roots, 2)
	assert.Equal(t, "c1", roots[0].ID)
	require.Len(t, roots[0].Subcategories, 2)
	assert.Equal(t, "omni", roots[0].Subcategories[0].Slug)
	assert.Empty(t, roots[1].Subcategories)
}

// Un padre inexistente es una referencia malformada tolerada: el nodo se
// promueve a raíz en lugar de desaparecer del árbol.
func TestBuildCategoryTree_PadreInexistenteEsRaiz(t *testing.T) {
	flat := []entity.Category{
		{ID: "c1", Title: "Accesorios", Slug: "accesorios", ParentID: "no-existe"},
	}

	roots := entity.BuildCategoryTree(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, "c1", roots[0].ID)
	assert.Empty(t, roots[0].ParentID, "la referencia malformada se limpia al promover a raíz")
}

// La auto-referencia tampoco puede formar un ciclo.
func TestBuildCategoryTree_AutoReferenciaEsRaiz(t *testing.T) {
	flat := []entity.Category{
		{ID: "c1", Title: "Bucle", Slug: "bucle", ParentID: "c1"},
	}

	roots := entity.BuildCategoryTree(flat)

	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].ParentID)
	assert.Empty(t, roots[0].Subcategories)
}

func TestBuildCategoryTree_ListaVacia(t *testing.T) {
	assert.Empty(t, entity.BuildCategoryTree(nil))
}

func TestBuildCategoryTree_AnidamientoProfundo(t *testing.T) {
	flat := []entity.Category{
		{ID: "c1", Title: "Raíz", Slug: "raiz"},
		{ID: "c2", Title: "Hijo", Slug: "hijo", ParentID: "c1"},
		{ID: "c3", Title: "Nieto", Slug: "nieto", ParentID: "c2"},
	}

	roots := entity.BuildCategoryTree(flat)

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Subcategories, 1)
	require.Len(t, roots[0].Subcategories[0].Subcategories, 1)
	assert.Equal(t, "nieto", roots[0].Subcategories[0].Subcategories[0].Slug)
}
