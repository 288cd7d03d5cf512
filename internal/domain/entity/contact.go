package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest solicitud de cotización para pedidos por volumen o configuraciones
// a medida. Registro auxiliar persistido en PostgreSQL. TargetUnitPrice es el
// precio unitario objetivo del cliente (columna NUMERIC); cero si no se indica.
type QuoteRequest struct {
	ID              string
	Name            string
	Email           string
	Company         string
	ProductSlug     string
	Quantity        int
	TargetUnitPrice decimal.Decimal
	Message         string
	CreatedAt       time.Time
}

// NewsletterSignup suscripción al boletín (email único).
type NewsletterSignup struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
