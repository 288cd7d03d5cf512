package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/rfstore-api/internal/application/catalog"
	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
)

// CatalogHandler maneja las peticiones HTTP del catálogo (público).
// Por diseño nunca devuelve 5xx por fallo de backend: la fachada degrada a vacío.
type CatalogHandler struct {
	facade *catalog.Facade
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(facade *catalog.Facade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

func productFilter(c *fiber.Ctx) repository.ProductFilter {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	return repository.ProductFilter{
		CategorySlug:       c.Query("category"),
		Tag:                c.Query("tag"),
		Limit:              limit,
		Country:            c.Query("country"),
		IncludeUnpublished: IsPreview(c),
	}
}

// ListProducts godoc
// @Summary      Listar productos normalizados
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Slug de categoría"
// @Param        tag       query  string  false  "Tag"
// @Param        limit     query  int     false  "Límite"
// @Param        country   query  string  false  "País para precios regionales"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products := h.facade.ListProducts(c.UserContext(), productFilter(c))
	return c.JSON(dto.ToProductList(products))
}

// GetProductBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{slug} [get]
func (h *CatalogHandler) GetProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SLUG", Message: "slug es requerido"})
	}
	product := h.facade.GetProductBySlug(c.UserContext(), slug, IsPreview(c))
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	out := dto.ToProductResponse(*product)
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Árbol de categorías con subcategorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories := h.facade.ListCategories(c.UserContext())
	return c.JSON(dto.ToCategoryList(categories))
}

// GetCategoryBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/categories/{slug} [get]
func (h *CatalogHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SLUG", Message: "slug es requerido"})
	}
	category := h.facade.GetCategoryBySlug(c.UserContext(), slug)
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	out := dto.ToCategoryResponse(*category)
	return c.JSON(out)
}

// GetOverview godoc
// @Summary      Contenido de portada (productos y categorías en paralelo)
// @Tags         catalog
// @Produce      json
// @Param        limit  query  int  false  "Límite de productos"  default(12)
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/catalog/home [get]
func (h *CatalogHandler) GetOverview(c *fiber.Ctx) error {
	filter := productFilter(c)
	if filter.Limit == 0 {
		filter.Limit = 12
	}
	ov := h.facade.GetOverview(c.UserContext(), filter)
	return c.JSON(dto.OverviewResponse{
		Products:   dto.ToProductList(ov.Products).Items,
		Categories: dto.ToCategoryList(ov.Categories).Items,
	})
}
