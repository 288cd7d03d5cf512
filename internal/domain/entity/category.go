package entity

// Category categoría normalizada del catálogo. La relación padre/hijo es
// unidireccional: el hijo guarda el ID del padre, nunca un puntero de vuelta,
// para que el árbol no pueda formar ciclos. En la práctica el árbol tiene dos
// niveles, aunque la forma admite anidamiento mayor.
type Category struct {
	ID            string
	Title         string
	Slug          string
	ParentID      string // vacío si es raíz; referencias malformadas se tratan como raíz
	Subcategories []Category
}

// BuildCategoryTree arma el árbol uniendo por ParentID una lista plana de categorías.
// Un nodo cuyo padre no existe en la lista se trata como raíz (referencia malformada
// tolerada). Un nodo que se referencia a sí mismo también queda como raíz.
func BuildCategoryTree(flat []Category) []Category {
	byID := make(map[string]bool, len(flat))
	for _, c := range flat {
		if c.ID != "" {
			byID[c.ID] = true
		}
	}

	children := make(map[string][]Category)
	var roots []Category
	for _, c := range flat {
		c.Subcategories = nil
		if c.ParentID == "" || c.ParentID == c.ID || !byID[c.ParentID] {
			c.ParentID = ""
			roots = append(roots, c)
			continue
		}
		children[c.ParentID] = append(children[c.ParentID], c)
	}

	for i := range roots {
		roots[i].Subcategories = attachChildren(roots[i].ID, children)
	}
	return roots
}

func attachChildren(parentID string, children map[string][]Category) []Category {
	subs := children[parentID]
	for i := range subs {
		subs[i].Subcategories = attachChildren(subs[i].ID, children)
	}
	return subs
}
