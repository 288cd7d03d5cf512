package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/rfstore-api/internal/application/pricing"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
)

// PriceResponse precio mostrable ya resuelto. La capa de presentación nunca
// ve las representaciones de precio propias de cada backend.
type PriceResponse struct {
	State   string           `json:"state"` // single, range, on_request
	Min     *decimal.Decimal `json:"min,omitempty"`
	Max     *decimal.Decimal `json:"max,omitempty"`
	Display string           `json:"display"`
}

// OptionResponse una opción de precio seleccionable.
type OptionResponse struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// VariantResponse variante con precio calculado por la plataforma.
type VariantResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida normalizada de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	CategoryID  string            `json:"category_id,omitempty"`
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Price       PriceResponse     `json:"price"`
	OptionAxis  string            `json:"option_axis,omitempty"`
	Options     []OptionResponse  `json:"options,omitempty"`
	Variants    []VariantResponse `json:"variants,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	InStock     bool              `json:"in_stock"`
	Published   bool              `json:"published"`
	Source      string            `json:"source"`
}

// ProductListResponse lista de productos normalizados.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryResponse categoría con subcategorías anidadas.
type CategoryResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	ParentID      string             `json:"parent_id,omitempty"`
	Subcategories []CategoryResponse `json:"subcategories,omitempty"`
}

// CategoryListResponse árbol de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// OverviewResponse contenido de la portada.
type OverviewResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
}

// ToProductResponse convierte la entidad normalizada y resuelve su precio mostrable.
func ToProductResponse(p entity.Product) ProductResponse {
	dp := pricing.Resolve(p)
	price := PriceResponse{State: string(dp.State), Display: dp.Format()}
	if dp.State != pricing.PriceStateOnRequest {
		min, max := dp.Min, dp.Max
		price.Min, price.Max = &min, &max
	}

	resolved := pricing.ResolveOptions(p)
	options := make([]OptionResponse, 0, len(resolved))
	for _, o := range resolved {
		options = append(options, OptionResponse{Label: o.Label, Price: o.Price})
	}
	variants := make([]VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantResponse{ID: v.ID, Name: v.Name, Price: v.Price})
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		CategoryID:  p.CategoryID,
		Type:        string(p.Type),
		Description: p.Description,
		Price:       price,
		OptionAxis:  string(p.OptionAxis),
		Options:     options,
		Variants:    variants,
		Images:      p.Images,
		Tags:        p.Tags,
		InStock:     p.InStock,
		Published:   p.Published,
		Source:      p.Source,
	}
}

// ToProductList convierte un lote de productos.
func ToProductList(products []entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}

// ToCategoryResponse convierte una categoría con sus subcategorías.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	subs := make([]CategoryResponse, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, ToCategoryResponse(s))
	}
	if len(subs) == 0 {
		subs = nil
	}
	return CategoryResponse{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		ParentID:      c.ParentID,
		Subcategories: subs,
	}
}

// ToCategoryList convierte el árbol completo.
func ToCategoryList(categories []entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryResponse(c))
	}
	return CategoryListResponse{Items: items}
}
