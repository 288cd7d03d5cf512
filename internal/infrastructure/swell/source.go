package swell

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
	"github.com/jcastro/rfstore-api/pkg/slug"
)

var _ repository.CatalogSource = (*Source)(nil)

// Source adaptador de la plataforma de comercio (API REST de Swell, autenticación
// por API key). Frontera de mapeo: los montos llegan en centavos y salen en
// mayor unidad; los assets de imagen salen como URLs planas.
type Source struct {
	cfg  config.SwellConfig
	http *resty.Client
	log  *logger.Logger

	// Memoización país → región de precios. Universo pequeño y estable durante
	// la vida del proceso; sin expiración ni desalojo.
	regionMu sync.RWMutex
	regions  map[string]string
}

// New construye el adaptador. El timeout acota cada llamada para que un backend
// lento degrade al siguiente eslabón del fallback en vez de colgar la petición.
func New(cfg config.SwellConfig, timeout time.Duration, log *logger.Logger) *Source {
	client := resty.New().
		SetBaseURL(cfg.StoreURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+cfg.SecretKey).
		SetHeader("Accept", "application/json")

	return &Source{
		cfg:     cfg,
		http:    client,
		log:     log.Component("swell"),
		regions: make(map[string]string),
	}
}

// Name identifica la fuente en logs y configuración.
func (s *Source) Name() string { return "swell" }

// Enabled función pura de la configuración inyectada, sin I/O.
func (s *Source) Enabled() bool { return s.cfg.Enabled() }

// ── Formas crudas del API de Swell ────────────────────────────────────────────
// Solo los campos que el adaptador mapea; campos nuevos del backend se ignoran.

type productList struct {
	Count   int          `json:"count"`
	Results []rawProduct `json:"results"`
}

type rawProduct struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Active      bool          `json:"active"`
	StockStatus string        `json:"stock_status"`
	Price       int64         `json:"price"` // centavos
	Description string        `json:"description"`
	CategoryID  string        `json:"category_id"`
	Tags        []string      `json:"tags"`
	Images      []rawImage    `json:"images"`
	Attributes  rawAttributes `json:"attributes"`
	Options     []rawOption   `json:"options"`
	Variants    struct {
		Results []rawVariant `json:"results"`
	} `json:"variants"`
}

type rawAttributes struct {
	ProductKind      string           `json:"product_kind"` // cable, connector
	PerFootRate      int64            `json:"per_foot_rate"`
	ConnectorPricing map[string]int64 `json:"connector_pricing"`
}

type rawImage struct {
	File struct {
		URL string `json:"url"`
	} `json:"file"`
}

type rawOption struct {
	Name   string `json:"name"` // "Length", "Gain"
	Values []struct {
		Name  string `json:"name"`
		Price int64  `json:"price"` // centavos
	} `json:"values"`
}

type rawVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // precio calculado por la plataforma, centavos
}

type categoryList struct {
	Results []rawCategory `json:"results"`
}

type rawCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parent_id"`
}

type rawRegion struct {
	ID string `json:"id"`
}

// ── Operaciones del puerto ────────────────────────────────────────────────────

// ListProducts lista productos de la plataforma ya normalizados. Cero resultados
// devuelve slice vacío; solo el fallo de transporte/auth devuelve error.
func (s *Source) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	req := s.http.R().SetContext(ctx).SetResult(&productList{})
	req.SetQueryParam("expand", "variants")
	if filter.CategorySlug != "" {
		req.SetQueryParam("category", filter.CategorySlug)
	}
	if filter.Tag != "" {
		req.SetQueryParam("tags", filter.Tag)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", filter.Limit))
	}
	if filter.Country != "" {
		if region, err := s.pricingRegion(ctx, filter.Country); err == nil && region != "" {
			req.SetQueryParam("$currency_region", region)
		}
	}

	resp, err := req.Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("%w: swell: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: swell: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	list := resp.Result().(*productList)
	products := make([]entity.Product, 0, len(list.Results))
	for _, raw := range list.Results {
		p, err := s.mapProduct(raw)
		if err != nil {
			// Fallo de mapeo por registro: se descarta y el lote continúa.
			s.log.Warn().Str("id", raw.ID).Err(err).Msg("producto swell descartado")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProductBySlug devuelve (nil, nil) cuando la plataforma responde que el slug no existe.
func (s *Source) GetProductBySlug(ctx context.Context, productSlug string) (*entity.Product, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&rawProduct{}).
		SetQueryParam("expand", "variants").
		Get("/api/products/" + productSlug)
	if err != nil {
		return nil, fmt.Errorf("%w: swell: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: swell: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	raw := resp.Result().(*rawProduct)
	if raw.ID == "" {
		return nil, nil
	}
	p, err := s.mapProduct(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMapping, err)
	}
	return &p, nil
}

// ListCategories arma el árbol uniendo por parent_id; referencias malformadas
// dejan al nodo como raíz.
func (s *Source) ListCategories(ctx context.Context) ([]entity.Category, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&categoryList{}).
		SetQueryParam("limit", "100").
		Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: swell: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: swell: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	list := resp.Result().(*categoryList)
	flat := make([]entity.Category, 0, len(list.Results))
	for _, raw := range list.Results {
		if raw.ID == "" || raw.Name == "" {
			s.log.Warn().Str("id", raw.ID).Msg("categoría swell descartada")
			continue
		}
		flat = append(flat, entity.Category{
			ID:       raw.ID,
			Title:    raw.Name,
			Slug:     orSlug(raw.Slug, raw.Name),
			ParentID: raw.ParentID,
		})
	}
	return entity.BuildCategoryTree(flat), nil
}

// GetCategoryBySlug devuelve (nil, nil) si la categoría no existe.
func (s *Source) GetCategoryBySlug(ctx context.Context, categorySlug string) (*entity.Category, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&rawCategory{}).
		Get("/api/categories/" + categorySlug)
	if err != nil {
		return nil, fmt.Errorf("%w: swell: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: swell: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}
	raw := resp.Result().(*rawCategory)
	if raw.ID == "" {
		return nil, nil
	}
	return &entity.Category{
		ID:       raw.ID,
		Title:    raw.Name,
		Slug:     orSlug(raw.Slug, raw.Name),
		ParentID: raw.ParentID,
	}, nil
}

// pricingRegion resuelve el país a la región de precios de la plataforma, con
// memoización por proceso. El espacio de claves (países) es pequeño y no lo
// controla el cliente, así que el mapa sin desalojo es aceptable.
func (s *Source) pricingRegion(ctx context.Context, country string) (string, error) {
	s.regionMu.RLock()
	region, ok := s.regions[country]
	s.regionMu.RUnlock()
	if ok {
		return region, nil
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&rawRegion{}).
		Get("/api/settings/regions/" + country)
	if err != nil {
		return "", fmt.Errorf("%w: swell regiones: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		// Sin región para el país: se memoiza vacío para no repetir la consulta.
		region = ""
	} else {
		region = resp.Result().(*rawRegion).ID
	}

	s.regionMu.Lock()
	s.regions[country] = region
	s.regionMu.Unlock()
	return region, nil
}

// ── Mapeo a la forma normalizada ──────────────────────────────────────────────

// mapProduct convierte la forma de Swell en el Product normalizado. Aquí ocurre
// la conversión centavos → mayor unidad; ningún monto en centavos sale del adaptador.
func (s *Source) mapProduct(raw rawProduct) (entity.Product, error) {
	if raw.Name == "" && raw.Slug == "" {
		return entity.Product{}, fmt.Errorf("registro %q sin nombre ni slug", raw.ID)
	}

	p := entity.Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Slug:        orSlug(raw.Slug, raw.Name),
		CategoryID:  raw.CategoryID,
		Description: raw.Description,
		Price:       fromCents(raw.Price),
		Tags:        raw.Tags,
		InStock:     raw.StockStatus != "out_of_stock",
		Published:   raw.Active,
		Source:      "swell",
	}

	for _, img := range raw.Images {
		if img.File.URL != "" {
			p.Images = append(p.Images, img.File.URL)
		}
	}

	switch raw.Attributes.ProductKind {
	case "cable":
		p.Type = entity.ProductTypeCable
		p.PerFootRate = fromCents(raw.Attributes.PerFootRate)
	case "connector":
		p.Type = entity.ProductTypeConnector
		if len(raw.Attributes.ConnectorPricing) > 0 {
			p.ConnectorPricing = make(map[string]decimal.Decimal, len(raw.Attributes.ConnectorPricing))
			for k, cents := range raw.Attributes.ConnectorPricing {
				p.ConnectorPricing[k] = fromCents(cents)
			}
		}
	default:
		p.Type = entity.ProductTypeSimple
	}

	// Opciones aplanadas con su eje, para que la UI elija el control correcto
	// sin conocer el backend.
	for _, opt := range raw.Options {
		axis, ok := optionAxis(opt.Name)
		if !ok {
			continue
		}
		p.OptionAxis = axis
		for _, v := range opt.Values {
			p.Options = append(p.Options, entity.PriceOption{Label: v.Name, Price: fromCents(v.Price)})
		}
	}

	for _, v := range raw.Variants.Results {
		p.Variants = append(p.Variants, entity.Variant{ID: v.ID, Name: v.Name, Price: fromCents(v.Price)})
	}

	return p, nil
}

func optionAxis(name string) (entity.OptionAxis, bool) {
	switch name {
	case "Length", "length":
		return entity.OptionAxisLength, true
	case "Gain", "gain":
		return entity.OptionAxisGain, true
	}
	return "", false
}

// fromCents convierte centavos a mayor unidad de moneda.
func fromCents(cents int64) decimal.Decimal {
	if cents <= 0 {
		return decimal.Zero
	}
	return decimal.New(cents, -2)
}

func orSlug(current, name string) string {
	if current != "" {
		return current
	}
	return slug.Make(name)
}
