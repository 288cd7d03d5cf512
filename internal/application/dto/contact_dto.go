package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest entrada para solicitar una cotización.
type CreateQuoteRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Email           string          `json:"email" validate:"required,email"`
	Company         string          `json:"company"`
	ProductSlug     string          `json:"product_slug"`
	Quantity        int             `json:"quantity" validate:"min=0"`
	TargetUnitPrice decimal.Decimal `json:"target_unit_price"`
	Message         string          `json:"message" validate:"max=2000"`
}

// QuoteResponse salida de una solicitud de cotización.
type QuoteResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Company         string          `json:"company,omitempty"`
	ProductSlug     string          `json:"product_slug,omitempty"`
	Quantity        int             `json:"quantity,omitempty"`
	TargetUnitPrice decimal.Decimal `json:"target_unit_price"`
	Message         string          `json:"message,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// QuoteListResponse listado paginado de solicitudes de cotización.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// NewsletterRequest entrada para suscribirse al boletín.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterResponse confirmación de suscripción.
type NewsletterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
