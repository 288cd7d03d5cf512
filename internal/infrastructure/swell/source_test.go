package swell_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/internal/infrastructure/swell"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: servidor HTTP falso que imita al API de Swell
// ──────────────────────────────────────────────────────────────────────────────

func newSource(t *testing.T, handler http.Handler) (*swell.Source, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.SwellConfig{StoreURL: srv.URL, SecretKey: "sk_test"}
	return swell.New(cfg, 2*time.Second, logger.Nop()), srv
}

const productListPayload = `{
  "count": 3,
  "results": [
    {
      "id": "sw-1",
      "name": "Cable ensamblado LMR-400",
      "slug": "cable-lmr400",
      "active": true,
      "stock_status": "in_stock",
      "price": 0,
      "attributes": {"product_kind": "cable", "per_foot_rate": 145},
      "options": [
        {"name": "Length", "values": [{"name": "10 ft"}, {"name": "50 ft"}]}
      ]
    },
    {
      "id": "sw-2",
      "name": "Antena omni",
      "slug": "antena-omni",
      "active": true,
      "stock_status": "out_of_stock",
      "price": 4450,
      "variants": {"results": [
        {"id": "v1", "name": "6dBi", "price": 1895},
        {"id": "v2", "name": "12dBi", "price": 3250}
      ]}
    },
    {"id": "sw-broken", "name": "", "slug": "", "price": 100}
  ]
}`

// ──────────────────────────────────────────────────────────────────────────────
// ListProducts
// ──────────────────────────────────────────────────────────────────────────────

// Los montos de la plataforma llegan en centavos y deben salir en mayor unidad.
func TestListProducts_ConvierteCentavosAMayorUnidad(t *testing.T) {
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productListPayload))
	}))

	products, err := src.ListProducts(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2, "el registro malformado se descarta sin tumbar el lote")

	cable := products[0]
	assert.Equal(t, entity.ProductTypeCable, cable.Type)
	assert.Equal(t, "1.45", cable.PerFootRate.String(), "145 centavos son 1.45")
	assert.Equal(t, entity.OptionAxisLength, cable.OptionAxis)
	assert.True(t, cable.InStock)

	antena := products[1]
	assert.Equal(t, "44.5", antena.Price.String())
	assert.False(t, antena.InStock, "out_of_stock mapea a InStock=false")
	require.Len(t, antena.Variants, 2)
	assert.Equal(t, "18.95", antena.Variants[0].Price.String())
}

func TestListProducts_ErrorHTTPEnvuelveSourceUnavailable(t *testing.T) {
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := src.ListProducts(context.Background(), repository.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestListProducts_PropagaFiltrosComoQueryParams(t *testing.T) {
	var query string
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products" {
			query = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
	}))

	products, err := src.ListProducts(context.Background(), repository.ProductFilter{
		CategorySlug: "antenas",
		Tag:          "wifi",
		Limit:        5,
	})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Contains(t, query, "category=antenas")
	assert.Contains(t, query, "tags=wifi")
	assert.Contains(t, query, "limit=5")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetProductBySlug
// ──────────────────────────────────────────────────────────────────────────────

// 404 de la plataforma es ausencia limpia: (nil, nil), nunca error.
func TestGetProductBySlug_404DevuelveNilNil(t *testing.T) {
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	p, err := src.GetProductBySlug(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProductBySlug_ProductoExistente(t *testing.T) {
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/conector-n", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
		  "id": "sw-9", "name": "Conector N", "slug": "conector-n", "active": true,
		  "attributes": {"product_kind": "connector", "connector_pricing": {"LMR-400": 450}}
		}`))
	}))

	p, err := src.GetProductBySlug(context.Background(), "conector-n")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.ProductTypeConnector, p.Type)
	assert.Equal(t, "4.5", p.ConnectorPricing["LMR-400"].String())
	assert.Equal(t, "swell", p.Source)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_ArmaArbolPorParentID(t *testing.T) {
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
		  {"id": "c1", "name": "Antenas", "slug": "antenas"},
		  {"id": "c2", "name": "Omni", "slug": "omni", "parent_id": "c1"},
		  {"id": "c3", "name": "Huerfana", "slug": "huerfana", "parent_id": "cx-no-existe"}
		]}`))
	}))

	categories, err := src.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2, "raíz real + huérfana promovida a raíz")

	var antenas *entity.Category
	for i := range categories {
		if categories[i].ID == "c1" {
			antenas = &categories[i]
		}
	}
	require.NotNil(t, antenas)
	require.Len(t, antenas.Subcategories, 1)
	assert.Equal(t, "omni", antenas.Subcategories[0].Slug)
}

// ──────────────────────────────────────────────────────────────────────────────
// Memoización de regiones de precios
// ──────────────────────────────────────────────────────────────────────────────

// La resolución país → región se consulta una sola vez por proceso.
func TestPricingRegion_SeMemoizaPorPais(t *testing.T) {
	var regionCalls int64
	src, _ := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/settings/regions/CA":
			atomic.AddInt64(&regionCalls, 1)
			_, _ = w.Write([]byte(`{"id": "north-america"}`))
		default:
			_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
		}
	}))

	filter := repository.ProductFilter{Country: "CA"}
	_, err := src.ListProducts(context.Background(), filter)
	require.NoError(t, err)
	_, err = src.ListProducts(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&regionCalls), "la región debe memoizarse tras la primera consulta")
}
