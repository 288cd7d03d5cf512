package repository

import (
	"context"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
)

// ProductFilter criterios de listado. Campos vacíos no filtran.
type ProductFilter struct {
	CategorySlug string
	Tag          string
	Limit        int // 0 = sin límite
	// Country código de país para precios regionales; solo lo honra la
	// plataforma de comercio, las demás fuentes lo ignoran.
	Country string
	// IncludeUnpublished incluye borradores (solo con token de preview válido).
	IncludeUnpublished bool
}

// CatalogSource define el puerto que implementa cada adaptador de backend
// (Swell, WooCommerce, dataset local). La fachada mantiene una lista priorizada
// de estas implementaciones junto con su predicado de disponibilidad; no hay
// if/else por backend en los sitios de llamada (DIP).
//
// Contrato de errores: "cero resultados" devuelve slice vacío y "no encontrado"
// devuelve (nil, nil); solo los fallos de transporte/autenticación devuelven
// error (envuelto en domain.ErrSourceUnavailable) para que la fachada haga fallback.
type CatalogSource interface {
	// Name identifica la fuente en logs y en la config de prioridad.
	Name() string
	// Enabled es una función pura de la configuración inyectada: sin I/O,
	// puede evaluarse en cada petición.
	Enabled() bool

	ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
