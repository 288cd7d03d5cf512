package localdata

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/pkg/logger"
	"github.com/jcastro/rfstore-api/pkg/slug"
)

var _ repository.CatalogSource = (*Source)(nil)

//go:embed products.json
var productsJSON []byte

//go:embed categories.json
var categoriesJSON []byte

// Source dataset local embebido, el eslabón final de la cadena de fallback.
// Es la fuente "tipo CMS" heredada: sin red, los lookups son en memoria y la
// única causa de indisponibilidad es estar deshabilitada por configuración.
type Source struct {
	enabled    bool
	products   []entity.Product
	categories []entity.Category
	bySlug     map[string]int
	log        *logger.Logger
}

// rawProduct forma del registro en products.json. Los precios del dataset ya
// vienen en mayor unidad de moneda.
type rawProduct struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Category         string             `json:"category"`
	Kind             string             `json:"kind"` // simple, cable, connector, antenna
	Price            decimal.Decimal    `json:"price"`
	PerFootRate      decimal.Decimal    `json:"per_foot_rate"`
	Lengths          []string           `json:"lengths"`
	GainOptions      []rawGainOption    `json:"gain_options"`
	ConnectorPricing map[string]float64 `json:"connector_pricing"`
	Images           []string           `json:"images"`
	Tags             []string           `json:"tags"`
	Description      string             `json:"description"`
	InStock          bool               `json:"in_stock"`
	Published        bool               `json:"published"`
}

type rawGainOption struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type rawCategory struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Parent string `json:"parent"`
}

// New construye la fuente local parseando el dataset embebido una sola vez.
// Registros individuales malformados se descartan con log; solo un JSON
// inválido a nivel de archivo es un error de construcción.
func New(enabled bool, log *logger.Logger) (*Source, error) {
	s := &Source{enabled: enabled, bySlug: make(map[string]int), log: log.Component("localdata")}

	var rawProducts []rawProduct
	if err := json.Unmarshal(productsJSON, &rawProducts); err != nil {
		return nil, fmt.Errorf("parsear products.json: %w", err)
	}
	for _, raw := range rawProducts {
		p, err := mapProduct(raw)
		if err != nil {
			s.log.Warn().Str("id", raw.ID).Err(err).Msg("registro local descartado")
			continue
		}
		s.bySlug[p.Slug] = len(s.products)
		s.products = append(s.products, p)
	}

	var rawCategories []rawCategory
	if err := json.Unmarshal(categoriesJSON, &rawCategories); err != nil {
		return nil, fmt.Errorf("parsear categories.json: %w", err)
	}
	flat := make([]entity.Category, 0, len(rawCategories))
	for _, raw := range rawCategories {
		if raw.ID == "" || raw.Title == "" {
			s.log.Warn().Str("id", raw.ID).Msg("categoría local descartada")
			continue
		}
		catSlug := raw.Slug
		if catSlug == "" {
			catSlug = slug.Make(raw.Title)
		}
		flat = append(flat, entity.Category{
			ID:       raw.ID,
			Title:    raw.Title,
			Slug:     catSlug,
			ParentID: raw.Parent,
		})
	}
	s.categories = entity.BuildCategoryTree(flat)

	return s, nil
}

// Name identifica la fuente en logs y configuración.
func (s *Source) Name() string { return "localdata" }

// Enabled refleja únicamente la configuración; el dataset en sí siempre está en memoria.
func (s *Source) Enabled() bool { return s.enabled }

// ListProducts lookup en memoria con los mismos filtros que las fuentes remotas.
func (s *Source) ListProducts(_ context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	var categoryID string
	if filter.CategorySlug != "" {
		categoryID = s.categoryIDBySlug(filter.CategorySlug)
	}

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.CategorySlug != "" && p.CategoryID != categoryID {
			continue
		}
		if filter.Tag != "" && !hasTag(p.Tags, filter.Tag) {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// GetProductBySlug devuelve (nil, nil) si el slug no existe.
func (s *Source) GetProductBySlug(_ context.Context, productSlug string) (*entity.Product, error) {
	idx, ok := s.bySlug[productSlug]
	if !ok {
		return nil, nil
	}
	p := s.products[idx]
	return &p, nil
}

// ListCategories devuelve el árbol ya armado (copiado, los llamadores no comparten estado).
func (s *Source) ListCategories(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// GetCategoryBySlug busca en el árbol, incluyendo subcategorías.
func (s *Source) GetCategoryBySlug(_ context.Context, categorySlug string) (*entity.Category, error) {
	if c := findCategory(s.categories, categorySlug); c != nil {
		found := *c
		return &found, nil
	}
	return nil, nil
}

func (s *Source) categoryIDBySlug(categorySlug string) string {
	if c := findCategory(s.categories, categorySlug); c != nil {
		return c.ID
	}
	return ""
}

func findCategory(categories []entity.Category, categorySlug string) *entity.Category {
	for i := range categories {
		if categories[i].Slug == categorySlug {
			return &categories[i]
		}
		if c := findCategory(categories[i].Subcategories, categorySlug); c != nil {
			return c
		}
	}
	return nil
}

// mapProduct convierte un registro crudo a la forma normalizada. Un registro sin
// slug ni título utilizable no es mapeable.
func mapProduct(raw rawProduct) (entity.Product, error) {
	productSlug := raw.Slug
	if productSlug == "" {
		productSlug = slug.Make(raw.Title)
	}
	if productSlug == "" {
		return entity.Product{}, fmt.Errorf("registro %q sin slug", raw.ID)
	}

	p := entity.Product{
		ID:          raw.ID,
		Name:        raw.Title,
		Slug:        productSlug,
		CategoryID:  raw.Category,
		Description: raw.Description,
		Price:       raw.Price,
		Images:      raw.Images,
		Tags:        raw.Tags,
		InStock:     raw.InStock,
		Published:   raw.Published,
		Source:      "localdata",
	}

	switch raw.Kind {
	case "cable":
		p.Type = entity.ProductTypeCable
		p.PerFootRate = raw.PerFootRate
		p.OptionAxis = entity.OptionAxisLength
		for _, l := range raw.Lengths {
			p.Options = append(p.Options, entity.PriceOption{Label: l})
		}
	case "connector":
		p.Type = entity.ProductTypeConnector
		p.ConnectorPricing = make(map[string]decimal.Decimal, len(raw.ConnectorPricing))
		for k, v := range raw.ConnectorPricing {
			p.ConnectorPricing[k] = decimal.NewFromFloat(v)
		}
	case "antenna":
		p.Type = entity.ProductTypeSimple
		if len(raw.GainOptions) > 0 {
			p.OptionAxis = entity.OptionAxisGain
			for _, g := range raw.GainOptions {
				p.Options = append(p.Options, entity.PriceOption{Label: g.Label, Price: g.Price})
			}
		}
	default:
		p.Type = entity.ProductTypeSimple
	}

	return p, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
