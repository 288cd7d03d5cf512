package stripepay

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"

	"github.com/jcastro/rfstore-api/internal/application/checkout"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/pkg/config"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

var _ checkout.PaymentGateway = (*Gateway)(nil)

// Gateway implementación del puerto PaymentGateway sobre Stripe Checkout.
// Solo crea la sesión: la captura del pago es asunto del procesador.
type Gateway struct {
	cfg config.StripeConfig
	log *logger.Logger
}

// NewGateway construye el adaptador y fija la API key global del SDK.
func NewGateway(cfg config.StripeConfig, log *logger.Logger) *Gateway {
	stripe.Key = cfg.SecretKey
	return &Gateway{cfg: cfg, log: log.Component("stripe")}
}

// CreateSession crea una sesión de Stripe Checkout con las líneas del carrito.
// Los precios ya viajan en centavos, la unidad que espera el procesador; la
// configuración de cables a medida va en la metadata de cada línea.
func (g *Gateway) CreateSession(ctx context.Context, items []entity.CartItem, customerEmail string) (*checkout.Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(it.Name),
		}
		if len(it.Metadata) > 0 {
			productData.Metadata = it.Metadata
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(it.UnitPriceCents),
				ProductData: productData,
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: crear sesión: %w", err)
	}

	g.log.Info().Str("session_id", sess.ID).Int("items", len(items)).Msg("sesión de checkout creada")
	return &checkout.Session{ID: sess.ID, URL: sess.URL}, nil
}
