package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/rfstore-api/internal/application/catalog"
	"github.com/jcastro/rfstore-api/internal/application/checkout"
	"github.com/jcastro/rfstore-api/internal/application/contact"
	"github.com/jcastro/rfstore-api/internal/application/shipping"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog       *catalog.Facade
	CheckoutUC    *checkout.UseCase
	ShippingUC    *shipping.UseCase
	ContactUC     *contact.UseCase
	PreviewSecret string
}

// Router registra las rutas de la API. Todas son públicas; el token de
// previsualización solo amplía lo visible, nunca restringe.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público, con previsualización opcional)
	catalogGroup := api.Group("/catalog", PreviewMiddleware(deps.PreviewSecret))
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catalogGroup.Get("/products", catalogHandler.ListProducts)
	catalogGroup.Get("/products/:slug", catalogHandler.GetProductBySlug)
	catalogGroup.Get("/categories", catalogHandler.ListCategories)
	catalogGroup.Get("/categories/:slug", catalogHandler.GetCategoryBySlug)
	catalogGroup.Get("/home", catalogHandler.GetOverview)

	// Checkout y envío
	checkoutGroup := api.Group("/checkout")
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.ShippingUC)
	checkoutGroup.Post("/session", checkoutHandler.CreateSession)
	checkoutGroup.Post("/shipping-rates", checkoutHandler.GetShippingRates)

	// Contacto y boletín
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact/quotes", contactHandler.CreateQuote)
	api.Get("/contact/quotes", contactHandler.ListQuotes)
	api.Get("/contact/quotes/:id", contactHandler.GetQuoteByID)
	api.Post("/newsletter", contactHandler.Subscribe)
}
