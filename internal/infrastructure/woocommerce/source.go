package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
	"github.com/jcastro/rfstore-api/pkg/slug"
)

var _ repository.CatalogSource = (*Source)(nil)

// Source adaptador de la tienda legada (API REST de WooCommerce, autenticación
// por consumer key/secret en query). Los montos llegan como cadenas decimales
// en mayor unidad; el hosting legado limita peticiones, así que las llamadas
// pasan por un rate limiter.
type Source struct {
	cfg  config.WooConfig
	http *resty.Client
	rl   ratelimit.Limiter
	log  *logger.Logger
}

// New construye el adaptador.
func New(cfg config.WooConfig, timeout time.Duration, log *logger.Logger) *Source {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("consumer_key", cfg.ConsumerKey).
		SetQueryParam("consumer_secret", cfg.ConsumerSecret)

	return &Source{
		cfg:  cfg,
		http: client,
		rl:   ratelimit.New(5), // el hosting legado tolera pocas peticiones por segundo
		log:  log.Component("woocommerce"),
	}
}

// Name identifica la fuente en logs y configuración.
func (s *Source) Name() string { return "woocommerce" }

// Enabled función pura de la configuración inyectada, sin I/O.
func (s *Source) Enabled() bool { return s.cfg.Enabled() }

// ── Formas crudas del API de WooCommerce ──────────────────────────────────────

type rawProduct struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"` // "publish", "draft"
	Price       string    `json:"price"`  // cadena decimal en mayor unidad
	Description string    `json:"short_description"`
	StockStatus string    `json:"stock_status"` // "instock", "outofstock"
	Images      []rawImg  `json:"images"`
	Categories  []rawRef  `json:"categories"`
	Tags        []rawRef  `json:"tags"`
	Attributes  []rawAttr `json:"attributes"`
	MetaData    []rawMeta `json:"meta_data"`
}

type rawImg struct {
	Src string `json:"src"`
}

type rawRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type rawAttr struct {
	Name    string   `json:"name"` // "Length", "Gain"
	Options []string `json:"options"`
}

type rawMeta struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type rawCategory struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Parent int64  `json:"parent"` // 0 = raíz
}

// ── Operaciones del puerto ────────────────────────────────────────────────────

// ListProducts lista productos de la tienda legada ya normalizados.
func (s *Source) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	s.rl.Take()

	req := s.http.R().SetContext(ctx).SetResult(&[]rawProduct{})
	if filter.CategorySlug != "" {
		req.SetQueryParam("category", filter.CategorySlug)
	}
	if filter.Tag != "" {
		req.SetQueryParam("tag", filter.Tag)
	}
	perPage := 100
	if filter.Limit > 0 && filter.Limit < perPage {
		perPage = filter.Limit
	}
	req.SetQueryParam("per_page", strconv.Itoa(perPage))

	resp, err := req.Get("/wp-json/wc/v3/products")
	if err != nil {
		return nil, fmt.Errorf("%w: woocommerce: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: woocommerce: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	raws := *resp.Result().(*[]rawProduct)
	products := make([]entity.Product, 0, len(raws))
	for _, raw := range raws {
		p, err := s.mapProduct(raw)
		if err != nil {
			s.log.Warn().Int64("id", raw.ID).Err(err).Msg("producto woocommerce descartado")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProductBySlug busca por slug; la tienda legada responde con un arreglo,
// vacío cuando el slug no existe (y eso es (nil, nil), no un error).
func (s *Source) GetProductBySlug(ctx context.Context, productSlug string) (*entity.Product, error) {
	s.rl.Take()

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&[]rawProduct{}).
		SetQueryParam("slug", productSlug).
		Get("/wp-json/wc/v3/products")
	if err != nil {
		return nil, fmt.Errorf("%w: woocommerce: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: woocommerce: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	raws := *resp.Result().(*[]rawProduct)
	if len(raws) == 0 {
		return nil, nil
	}
	p, err := s.mapProduct(raws[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMapping, err)
	}
	return &p, nil
}

// ListCategories arma el árbol uniendo por parent; parent 0 o inexistente deja
// al nodo como raíz.
func (s *Source) ListCategories(ctx context.Context) ([]entity.Category, error) {
	s.rl.Take()

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&[]rawCategory{}).
		SetQueryParam("per_page", "100").
		Get("/wp-json/wc/v3/products/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: woocommerce: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: woocommerce: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	raws := *resp.Result().(*[]rawCategory)
	flat := make([]entity.Category, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == 0 || raw.Name == "" {
			s.log.Warn().Int64("id", raw.ID).Msg("categoría woocommerce descartada")
			continue
		}
		parent := ""
		if raw.Parent > 0 {
			parent = strconv.FormatInt(raw.Parent, 10)
		}
		flat = append(flat, entity.Category{
			ID:       strconv.FormatInt(raw.ID, 10),
			Title:    raw.Name,
			Slug:     orSlug(raw.Slug, raw.Name),
			ParentID: parent,
		})
	}
	return entity.BuildCategoryTree(flat), nil
}

// GetCategoryBySlug busca la categoría por slug.
func (s *Source) GetCategoryBySlug(ctx context.Context, categorySlug string) (*entity.Category, error) {
	s.rl.Take()

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&[]rawCategory{}).
		SetQueryParam("slug", categorySlug).
		Get("/wp-json/wc/v3/products/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: woocommerce: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: woocommerce: HTTP %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	raws := *resp.Result().(*[]rawCategory)
	if len(raws) == 0 {
		return nil, nil
	}
	raw := raws[0]
	parent := ""
	if raw.Parent > 0 {
		parent = strconv.FormatInt(raw.Parent, 10)
	}
	return &entity.Category{
		ID:       strconv.FormatInt(raw.ID, 10),
		Title:    raw.Name,
		Slug:     orSlug(raw.Slug, raw.Name),
		ParentID: parent,
	}, nil
}

// ── Mapeo a la forma normalizada ──────────────────────────────────────────────

// mapProduct convierte la forma de WooCommerce en el Product normalizado.
// Los precios llegan como cadenas decimales; una cadena no parseable hace el
// registro no mapeable (se descarta en el lote, no tumba el listado).
func (s *Source) mapProduct(raw rawProduct) (entity.Product, error) {
	if raw.Name == "" && raw.Slug == "" {
		return entity.Product{}, fmt.Errorf("registro %d sin nombre ni slug", raw.ID)
	}

	price, err := parsePrice(raw.Price)
	if err != nil {
		return entity.Product{}, fmt.Errorf("precio %q: %v", raw.Price, err)
	}

	p := entity.Product{
		ID:          strconv.FormatInt(raw.ID, 10),
		Name:        raw.Name,
		Slug:        orSlug(raw.Slug, raw.Name),
		Description: raw.Description,
		Price:       price,
		InStock:     raw.StockStatus == "instock",
		Published:   raw.Status == "publish",
		Source:      "woocommerce",
		Type:        entity.ProductTypeSimple,
	}

	if len(raw.Categories) > 0 {
		p.CategoryID = strconv.FormatInt(raw.Categories[0].ID, 10)
	}
	for _, t := range raw.Tags {
		p.Tags = append(p.Tags, t.Slug)
	}
	for _, img := range raw.Images {
		if img.Src != "" {
			p.Images = append(p.Images, img.Src)
		}
	}

	// Los datos propios de cables y conectores viven en custom fields de la
	// tienda legada.
	meta := metaIndex(raw.MetaData)
	if rate, ok := metaDecimal(meta, "per_foot_rate"); ok && rate.IsPositive() {
		p.Type = entity.ProductTypeCable
		p.PerFootRate = rate
	}
	if table, ok := metaPriceTable(meta, "connector_pricing"); ok {
		p.Type = entity.ProductTypeConnector
		p.ConnectorPricing = table
	}
	if opts, ok := metaGainOptions(meta, "gain_options"); ok {
		p.OptionAxis = entity.OptionAxisGain
		p.Options = opts
	}

	// Atributos de producto: los largos disponibles del cable.
	for _, attr := range raw.Attributes {
		if attr.Name == "Length" || attr.Name == "length" {
			p.OptionAxis = entity.OptionAxisLength
			for _, label := range attr.Options {
				p.Options = append(p.Options, entity.PriceOption{Label: label})
			}
		}
	}

	return p, nil
}

func metaIndex(metas []rawMeta) map[string]json.RawMessage {
	idx := make(map[string]json.RawMessage, len(metas))
	for _, m := range metas {
		idx[m.Key] = m.Value
	}
	return idx
}

func metaDecimal(meta map[string]json.RawMessage, key string) (decimal.Decimal, bool) {
	v, ok := meta[key]
	if !ok {
		return decimal.Zero, false
	}
	var str string
	if err := json.Unmarshal(v, &str); err != nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func metaPriceTable(meta map[string]json.RawMessage, key string) (map[string]decimal.Decimal, bool) {
	v, ok := meta[key]
	if !ok {
		return nil, false
	}
	var strTable map[string]string
	if err := json.Unmarshal(v, &strTable); err != nil || len(strTable) == 0 {
		return nil, false
	}
	table := make(map[string]decimal.Decimal, len(strTable))
	for k, s := range strTable {
		d, err := decimal.NewFromString(s)
		if err != nil {
			continue
		}
		table[k] = d
	}
	if len(table) == 0 {
		return nil, false
	}
	return table, true
}

func metaGainOptions(meta map[string]json.RawMessage, key string) ([]entity.PriceOption, bool) {
	v, ok := meta[key]
	if !ok {
		return nil, false
	}
	var raws []struct {
		Label string `json:"label"`
		Price string `json:"price"`
	}
	if err := json.Unmarshal(v, &raws); err != nil || len(raws) == 0 {
		return nil, false
	}
	opts := make([]entity.PriceOption, 0, len(raws))
	for _, r := range raws {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			continue
		}
		opts = append(opts, entity.PriceOption{Label: r.Label, Price: price})
	}
	if len(opts) == 0 {
		return nil, false
	}
	return opts, true
}

// parsePrice tolera el precio vacío (productos cotizados por opciones) pero no
// uno malformado.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func orSlug(current, name string) string {
	if current != "" {
		return current
	}
	return slug.Make(name)
}
