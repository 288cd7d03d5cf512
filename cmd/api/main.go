package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastro/rfstore-api/internal/application/catalog"
	"github.com/jcastro/rfstore-api/internal/application/checkout"
	"github.com/jcastro/rfstore-api/internal/application/contact"
	"github.com/jcastro/rfstore-api/internal/application/shipping"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
	"github.com/jcastro/rfstore-api/internal/infrastructure/localdata"
	"github.com/jcastro/rfstore-api/internal/infrastructure/postgres"
	"github.com/jcastro/rfstore-api/internal/infrastructure/shiprates"
	"github.com/jcastro/rfstore-api/internal/infrastructure/stripepay"
	"github.com/jcastro/rfstore-api/internal/infrastructure/swell"
	"github.com/jcastro/rfstore-api/internal/infrastructure/woocommerce"
	httpRouter "github.com/jcastro/rfstore-api/internal/interfaces/http"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Fuentes de catálogo en orden de prioridad por defecto:
	// plataforma de comercio → tienda legada → dataset local embebido.
	swellSource := swell.New(cfg.Swell, cfg.Catalog.RequestTimeout, log)
	wooSource := woocommerce.New(cfg.Woo, cfg.Catalog.RequestTimeout, log)
	localSource, err := localdata.New(cfg.Catalog.LocalEnabled, log)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset local embebido")
	}
	sources := []repository.CatalogSource{swellSource, wooSource, localSource}
	facade := catalog.NewFacade(cfg.Catalog, log, sources...)

	for _, s := range sources {
		log.Info().Str("source", s.Name()).Bool("enabled", s.Enabled()).Msg("fuente de catálogo")
	}

	// Checkout: solo si el procesador de pagos está configurado.
	var checkoutUC *checkout.UseCase
	if cfg.Stripe.Enabled() {
		gateway := stripepay.NewGateway(cfg.Stripe, log)
		checkoutUC = checkout.NewUseCase(gateway)
	} else {
		log.Warn().Msg("procesador de pagos no configurado, checkout deshabilitado")
	}

	// Tarifas de envío: el caso de uso degrada a lista vacía sin proveedor.
	var rateProvider shipping.RateProvider
	if cfg.Shipping.Enabled() {
		rateProvider = shiprates.NewClient(cfg.Shipping, cfg.Catalog.RequestTimeout)
	}
	shippingUC := shipping.NewUseCase(rateProvider, log)

	quoteRepo := postgres.NewQuoteRepository(pool)
	newsletterRepo := postgres.NewNewsletterRepository(pool)
	contactUC := contact.NewUseCase(quoteRepo, newsletterRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RFStore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:       facade,
		CheckoutUC:    checkoutUC,
		ShippingUC:    shippingUC,
		ContactUC:     contactUC,
		PreviewSecret: cfg.Preview.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
