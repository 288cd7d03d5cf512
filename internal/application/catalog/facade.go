package catalog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

// Facade punto de entrada único al catálogo. Mantiene la lista priorizada de
// fuentes y aplica la secuencia seleccionar → intentar → fallback:
//
//  1. Se consideran solo las fuentes habilitadas, en orden de prioridad fija.
//  2. Se intenta la operación contra la primera; en el camino feliz se consulta
//     exactamente un backend por llamada.
//  3. Si el adaptador falla (transporte/auth/timeout) se registra el motivo y se
//     reintenta contra la siguiente fuente, secuencialmente, nunca en paralelo:
//     llamadas especulativas a varios backends gastarían cuota para un camino
//     de fallo que rara vez se ejercita.
//  4. Agotadas las fuentes, se devuelve un resultado vacío; esta capa trata
//     "sin fuente de datos" como degradación no fatal y jamás propaga el error
//     al renderizado.
//
// El resultado es determinista para una configuración fija: sin azar y sin
// desempates por tiempo, de modo que los tests pueden afirmar el orden exacto.
type Facade struct {
	sources []repository.CatalogSource
	timeout time.Duration
	log     *logger.Logger
}

// NewFacade construye la fachada. El orden de sources es la prioridad por defecto
// (plataforma de comercio → tienda legada → dataset local); preferredSource
// promueve una fuente al frente sin eliminar la cadena.
func NewFacade(cfg config.CatalogConfig, log *logger.Logger, sources ...repository.CatalogSource) *Facade {
	ordered := make([]repository.CatalogSource, 0, len(sources))
	if cfg.PreferredSource != "" {
		for _, s := range sources {
			if s.Name() == cfg.PreferredSource {
				ordered = append(ordered, s)
			}
		}
	}
	for _, s := range sources {
		if s.Name() != cfg.PreferredSource {
			ordered = append(ordered, s)
		}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Facade{sources: ordered, timeout: timeout, log: log.Component("catalog")}
}

// enabled devuelve las fuentes habilitadas en orden de prioridad.
func (f *Facade) enabled() []repository.CatalogSource {
	out := make([]repository.CatalogSource, 0, len(f.sources))
	for _, s := range f.sources {
		if s.Enabled() {
			out = append(out, s)
		}
	}
	return out
}

// ListProducts lista productos normalizados desde la primera fuente que responda.
// Agotadas las fuentes devuelve slice vacío, nunca error.
func (f *Facade) ListProducts(ctx context.Context, filter repository.ProductFilter) []entity.Product {
	for _, src := range f.enabled() {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		products, err := src.ListProducts(attemptCtx, filter)
		cancel()
		if err != nil {
			f.log.Warn().Str("source", src.Name()).Err(err).Msg("fuente falló al listar productos, probando la siguiente")
			continue
		}
		if !filter.IncludeUnpublished {
			products = onlyPublished(products)
		}
		if products == nil {
			products = []entity.Product{}
		}
		return products
	}
	return []entity.Product{}
}

// GetProductBySlug busca un producto por slug. Un "no encontrado" limpio de una
// fuente alcanzable es autoritativo: se corta ahí sin consultar las demás
// fuentes, porque una ausencia confirmada no es un fallo. Solo los errores de
// transporte disparan el fallback. Agotadas las fuentes devuelve nil.
func (f *Facade) GetProductBySlug(ctx context.Context, slug string, includeUnpublished bool) *entity.Product {
	for _, src := range f.enabled() {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		product, err := src.GetProductBySlug(attemptCtx, slug)
		cancel()
		if err != nil {
			f.log.Warn().Str("source", src.Name()).Str("slug", slug).Err(err).Msg("fuente falló al buscar producto, probando la siguiente")
			continue
		}
		if product == nil {
			return nil
		}
		if !product.Published && !includeUnpublished {
			return nil
		}
		return product
	}
	return nil
}

// ListCategories devuelve el árbol de categorías con subcategorías pobladas.
// Agotadas las fuentes devuelve slice vacío.
func (f *Facade) ListCategories(ctx context.Context) []entity.Category {
	for _, src := range f.enabled() {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		categories, err := src.ListCategories(attemptCtx)
		cancel()
		if err != nil {
			f.log.Warn().Str("source", src.Name()).Err(err).Msg("fuente falló al listar categorías, probando la siguiente")
			continue
		}
		if categories == nil {
			categories = []entity.Category{}
		}
		return categories
	}
	return []entity.Category{}
}

// GetCategoryBySlug busca una categoría por slug con la misma política que
// GetProductBySlug: ausencia confirmada corta, solo el fallo de transporte
// continúa con la siguiente fuente.
func (f *Facade) GetCategoryBySlug(ctx context.Context, slug string) *entity.Category {
	for _, src := range f.enabled() {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		category, err := src.GetCategoryBySlug(attemptCtx, slug)
		cancel()
		if err != nil {
			f.log.Warn().Str("source", src.Name()).Str("slug", slug).Err(err).Msg("fuente falló al buscar categoría, probando la siguiente")
			continue
		}
		return category
	}
	return nil
}

// Overview contenido de la portada: productos destacados y árbol de categorías.
type Overview struct {
	Products   []entity.Product
	Categories []entity.Category
}

// GetOverview obtiene productos y categorías en paralelo (fan-out/fan-in sin
// dependencia de orden) y une ambos resultados. Como cada operación ya degrada
// a vacío, la unión nunca falla.
func (f *Facade) GetOverview(ctx context.Context, filter repository.ProductFilter) Overview {
	var ov Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ov.Products = f.ListProducts(gctx, filter)
		return nil
	})
	g.Go(func() error {
		ov.Categories = f.ListCategories(gctx)
		return nil
	})
	_ = g.Wait()
	return ov
}

func onlyPublished(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}
