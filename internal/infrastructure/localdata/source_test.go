package localdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/internal/infrastructure/localdata"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

func newSource(t *testing.T) *localdata.Source {
	t.Helper()
	s, err := localdata.New(true, logger.Nop())
	require.NoError(t, err, "el dataset embebido debe parsear siempre")
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción y registros malformados
// ──────────────────────────────────────────────────────────────────────────────

// El dataset trae un registro sin slug ni título; debe descartarse en el parseo
// sin afectar al resto.
func TestNew_DescartaRegistroMalformado(t *testing.T) {
	s := newSource(t)

	products, err := s.ListProducts(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)

	for _, p := range products {
		assert.NotEmpty(t, p.Slug, "ningún producto mapeado puede quedar sin slug")
		assert.NotEqual(t, "prod-broken-record", p.ID)
	}
	// 9 registros en el archivo, 1 malformado
	assert.Len(t, products, 8)
}

func TestEnabled_RespetaConfiguracion(t *testing.T) {
	off, err := localdata.New(false, logger.Nop())
	require.NoError(t, err)

	assert.False(t, off.Enabled())
	assert.True(t, newSource(t).Enabled())
	assert.Equal(t, "localdata", off.Name())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductBySlug_ProductoConocido(t *testing.T) {
	s := newSource(t)

	p, err := s.GetProductBySlug(context.Background(), "cable-lmr200")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, entity.ProductTypeCable, p.Type)
	assert.Equal(t, entity.OptionAxisLength, p.OptionAxis)
	assert.Equal(t, "0.85", p.PerFootRate.String())
	assert.Len(t, p.Options, 5)
	assert.Equal(t, "localdata", p.Source)
}

// Slug inexistente devuelve (nil, nil): ausencia limpia, no error.
func TestGetProductBySlug_InexistenteDevuelveNilNil(t *testing.T) {
	s := newSource(t)

	p, err := s.GetProductBySlug(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProductBySlug_ConectorConTablaDePrecios(t *testing.T) {
	s := newSource(t)

	p, err := s.GetProductBySlug(context.Background(), "conector-n-macho")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, entity.ProductTypeConnector, p.Type)
	require.Contains(t, p.ConnectorPricing, "LMR-400")
	assert.Equal(t, "4.5", p.ConnectorPricing["LMR-400"].String())
}

func TestGetProductBySlug_AntenaConOpcionesDeGanancia(t *testing.T) {
	s := newSource(t)

	p, err := s.GetProductBySlug(context.Background(), "antena-omni-24ghz")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, entity.OptionAxisGain, p.OptionAxis)
	require.Len(t, p.Options, 3)
	assert.Equal(t, "6dBi", p.Options[0].Label)
	assert.Equal(t, "18.95", p.Options[0].Price.String())
}

func TestListProducts_FiltroPorCategoria(t *testing.T) {
	s := newSource(t)

	products, err := s.ListProducts(context.Background(), repository.ProductFilter{CategorySlug: "cables-lmr200"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "cable-lmr200", products[0].Slug)
}

func TestListProducts_FiltroPorTagYLimite(t *testing.T) {
	s := newSource(t)

	byTag, err := s.ListProducts(context.Background(), repository.ProductFilter{Tag: "wifi"})
	require.NoError(t, err)
	assert.Len(t, byTag, 2)

	limited, err := s.ListProducts(context.Background(), repository.ProductFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

// La fuente no filtra publicación: eso es política de la fachada, que necesita
// los borradores para el modo preview.
func TestListProducts_IncluyeBorradores(t *testing.T) {
	s := newSource(t)

	products, err := s.ListProducts(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)

	var draft bool
	for _, p := range products {
		if p.Slug == "antena-helicoidal-915" {
			draft = true
			assert.False(t, p.Published)
		}
	}
	assert.True(t, draft, "el borrador debe estar presente en la salida de la fuente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_ArbolConSubcategorias(t *testing.T) {
	s := newSource(t)

	categories, err := s.ListCategories(context.Background())
	require.NoError(t, err)

	// 4 raíces: antenas, cables, conectores y la huérfana promovida a raíz.
	require.Len(t, categories, 4)

	byID := make(map[string]entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	antenas, ok := byID["cat-antennas"]
	require.True(t, ok)
	assert.Len(t, antenas.Subcategories, 2)

	// Padre inexistente: la categoría se promueve a raíz en lugar de perderse.
	orphan, ok := byID["cat-legacy-orphan"]
	require.True(t, ok, "una categoría con padre inexistente debe aparecer como raíz")
	assert.Empty(t, orphan.Subcategories)
}

func TestGetCategoryBySlug_EncuentraSubcategoria(t *testing.T) {
	s := newSource(t)

	c, err := s.GetCategoryBySlug(context.Background(), "cables-lmr400")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "cat-cables-lmr400", c.ID)
	assert.Equal(t, "cat-cables", c.ParentID)
}

func TestGetCategoryBySlug_InexistenteDevuelveNilNil(t *testing.T) {
	s := newSource(t)

	c, err := s.GetCategoryBySlug(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, c)
}
