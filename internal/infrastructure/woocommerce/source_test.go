package woocommerce_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/internal/infrastructure/woocommerce"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: servidor HTTP falso que imita al API de la tienda legada
// ──────────────────────────────────────────────────────────────────────────────

func newSource(t *testing.T, handler http.Handler) *woocommerce.Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.WooConfig{BaseURL: srv.URL, ConsumerKey: "ck_test", ConsumerSecret: "cs_test"}
	return woocommerce.New(cfg, 2*time.Second, logger.Nop())
}

const productListPayload = `[
  {
    "id": 101,
    "name": "Cable ensamblado LMR-200",
    "slug": "cable-lmr200",
    "status": "publish",
    "price": "",
    "stock_status": "instock",
    "attributes": [{"name": "Length", "options": ["6 ft", "10 ft", "25 ft"]}],
    "meta_data": [{"key": "per_foot_rate", "value": "0.85"}]
  },
  {
    "id": 102,
    "name": "Antena Yagi",
    "slug": "antena-yagi",
    "status": "publish",
    "price": "44.50",
    "stock_status": "outofstock",
    "categories": [{"id": 7, "name": "Antenas", "slug": "antenas"}],
    "tags": [{"id": 1, "name": "WiFi", "slug": "wifi"}]
  },
  {
    "id": 103,
    "name": "Precio roto",
    "slug": "precio-roto",
    "status": "publish",
    "price": "no-es-numero"
  }
]`

// ──────────────────────────────────────────────────────────────────────────────
// ListProducts
// ──────────────────────────────────────────────────────────────────────────────

// La autenticación viaja como query params y los precios llegan como cadenas.
func TestListProducts_MapeaYDescartaPrecioMalformado(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		require.Equal(t, "ck_test", r.URL.Query().Get("consumer_key"))
		require.Equal(t, "cs_test", r.URL.Query().Get("consumer_secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productListPayload))
	}))

	products, err := src.ListProducts(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2, "el registro con precio malformado se descarta sin tumbar el lote")

	cable := products[0]
	assert.Equal(t, entity.ProductTypeCable, cable.Type, "per_foot_rate en meta_data lo clasifica como cable")
	assert.Equal(t, "0.85", cable.PerFootRate.String())
	assert.Equal(t, entity.OptionAxisLength, cable.OptionAxis)
	require.Len(t, cable.Options, 3)
	assert.Equal(t, "6 ft", cable.Options[0].Label)

	antena := products[1]
	assert.Equal(t, "44.5", antena.Price.String())
	assert.Equal(t, "7", antena.CategoryID, "el ID numérico se normaliza a cadena")
	assert.Equal(t, []string{"wifi"}, antena.Tags)
	assert.False(t, antena.InStock)
	assert.Equal(t, "woocommerce", antena.Source)
}

func TestListProducts_ErrorHTTPEnvuelveSourceUnavailable(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := src.ListProducts(context.Background(), repository.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetProductBySlug
// ──────────────────────────────────────────────────────────────────────────────

// La tienda legada responde un arreglo; vacío significa ausencia limpia (nil, nil).
func TestGetProductBySlug_ArregloVacioDevuelveNilNil(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "no-existe", r.URL.Query().Get("slug"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	p, err := src.GetProductBySlug(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProductBySlug_ConectorDesdeMetaData(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
		  "id": 201, "name": "Conector N macho", "slug": "conector-n-macho",
		  "status": "publish", "price": "",
		  "meta_data": [{"key": "connector_pricing", "value": {"LMR-200": "3.25", "LMR-400": "4.50"}}]
		}]`))
	}))

	p, err := src.GetProductBySlug(context.Background(), "conector-n-macho")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.ProductTypeConnector, p.Type)
	require.Len(t, p.ConnectorPricing, 2)
	assert.Equal(t, "3.25", p.ConnectorPricing["LMR-200"].String())
}

func TestGetProductBySlug_OpcionesDeGananciaDesdeMetaData(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
		  "id": 202, "name": "Antena omni", "slug": "antena-omni",
		  "status": "draft", "price": "",
		  "meta_data": [{"key": "gain_options", "value": [
		    {"label": "6dBi", "price": "18.95"},
		    {"label": "9dBi", "price": "24.95"}
		  ]}]
		}]`))
	}))

	p, err := src.GetProductBySlug(context.Background(), "antena-omni")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.OptionAxisGain, p.OptionAxis)
	require.Len(t, p.Options, 2)
	assert.Equal(t, "18.95", p.Options[0].Price.String())
	assert.False(t, p.Published, "status draft mapea a Published=false")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_ParentCeroEsRaiz(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
		  {"id": 7, "name": "Antenas", "slug": "antenas", "parent": 0},
		  {"id": 8, "name": "Omni", "slug": "omni", "parent": 7},
		  {"id": 9, "name": "", "slug": "x", "parent": 0}
		]`))
	}))

	categories, err := src.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1, "la categoría sin nombre se descarta; omni cuelga de antenas")
	assert.Equal(t, "7", categories[0].ID)
	require.Len(t, categories[0].Subcategories, 1)
	assert.Equal(t, "8", categories[0].Subcategories[0].ID)
}

func TestGetCategoryBySlug_Existente(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "omni", r.URL.Query().Get("slug"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 8, "name": "Omni", "slug": "omni", "parent": 7}]`))
	}))

	c, err := src.GetCategoryBySlug(context.Background(), "omni")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "8", c.ID)
	assert.Equal(t, "7", c.ParentID)
}
