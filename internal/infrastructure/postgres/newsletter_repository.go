package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
)

var _ repository.NewsletterRepository = (*NewsletterRepo)(nil)

// NewsletterRepo implementación del puerto NewsletterRepository sobre PostgreSQL.
type NewsletterRepo struct {
	q Querier
}

// NewNewsletterRepository construye el adaptador de persistencia para suscripciones.
func NewNewsletterRepository(q Querier) *NewsletterRepo {
	return &NewsletterRepo{q: q}
}

// Create persiste una suscripción. Email repetido devuelve domain.ErrDuplicate
// (constraint único en la tabla).
func (r *NewsletterRepo) Create(signup *entity.NewsletterSignup) error {
	query := `INSERT INTO newsletter_signups (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, signup.ID, signup.Email, signup.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

// GetByEmail obtiene una suscripción por email; (nil, nil) si no existe.
func (r *NewsletterRepo) GetByEmail(email string) (*entity.NewsletterSignup, error) {
	query := `SELECT id, email, created_at FROM newsletter_signups WHERE email = $1`
	var s entity.NewsletterSignup
	err := r.q.QueryRow(context.Background(), query, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signup: %w", err)
	}
	return &s, nil
}
