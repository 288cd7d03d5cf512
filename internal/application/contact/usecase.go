package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
)

// UseCase registros auxiliares: solicitudes de cotización y suscripciones al boletín.
type UseCase struct {
	quotes     repository.QuoteRepository
	newsletter repository.NewsletterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(quotes repository.QuoteRepository, newsletter repository.NewsletterRepository) *UseCase {
	return &UseCase{quotes: quotes, newsletter: newsletter}
}

// CreateQuote registra una solicitud de cotización.
func (uc *UseCase) CreateQuote(in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.Name == "" || !validEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetUnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	quote := &entity.QuoteRequest{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Company:         in.Company,
		ProductSlug:     in.ProductSlug,
		Quantity:        in.Quantity,
		TargetUnitPrice: in.TargetUnitPrice,
		Message:         in.Message,
		CreatedAt:       time.Now(),
	}
	if err := uc.quotes.Create(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// ListQuotes lista solicitudes de cotización, más recientes primero.
func (uc *UseCase) ListQuotes(page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	quotes, err := uc.quotes.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, *toQuoteResponse(q))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetQuote busca una solicitud por ID. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetQuote(id string) (*dto.QuoteResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	return toQuoteResponse(quote), nil
}

// Subscribe suscribe un email al boletín. Repetir un email ya suscrito devuelve
// la suscripción existente, no un error.
func (uc *UseCase) Subscribe(in dto.NewsletterRequest) (*dto.NewsletterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validEmail(email) {
		return nil, domain.ErrInvalidInput
	}
	signup := &entity.NewsletterSignup{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	err := uc.newsletter.Create(signup)
	if err == domain.ErrDuplicate {
		existing, getErr := uc.newsletter.GetByEmail(email)
		if getErr == nil && existing != nil {
			return toNewsletterResponse(existing), nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return toNewsletterResponse(signup), nil
}

func toQuoteResponse(q *entity.QuoteRequest) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ID:              q.ID,
		Name:            q.Name,
		Email:           q.Email,
		Company:         q.Company,
		ProductSlug:     q.ProductSlug,
		Quantity:        q.Quantity,
		TargetUnitPrice: q.TargetUnitPrice,
		Message:         q.Message,
		CreatedAt:       q.CreatedAt,
	}
}

func toNewsletterResponse(s *entity.NewsletterSignup) *dto.NewsletterResponse {
	return &dto.NewsletterResponse{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt}
}

// validEmail validación mínima; la unicidad real la garantiza la base de datos.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
