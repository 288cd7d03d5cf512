package repository

import "github.com/jcastro/rfstore-api/internal/domain/entity"

// QuoteRepository puerto de persistencia para solicitudes de cotización (DIP).
type QuoteRepository interface {
	Create(quote *entity.QuoteRequest) error
	GetByID(id string) (*entity.QuoteRequest, error)
	List(limit, offset int) ([]*entity.QuoteRequest, error)
}

// NewsletterRepository puerto de persistencia para suscripciones al boletín.
type NewsletterRepository interface {
	Create(signup *entity.NewsletterSignup) error
	GetByEmail(email string) (*entity.NewsletterSignup, error)
}
