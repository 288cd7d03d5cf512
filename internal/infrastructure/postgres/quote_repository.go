package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
	"github.com/jcastro/rfstore-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador de persistencia para cotizaciones.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste una solicitud de cotización.
func (r *QuoteRepo) Create(quote *entity.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (id, name, email, company, product_slug, quantity, target_unit_price, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Name, quote.Email, quote.Company,
		quote.ProductSlug, quote.Quantity, quote.TargetUnitPrice, quote.Message, quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.QuoteRequest, error) {
	query := `
		SELECT id, name, email, company, product_slug, quantity, target_unit_price, message, created_at
		FROM quote_requests WHERE id = $1`
	var q entity.QuoteRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.Name, &q.Email, &q.Company, &q.ProductSlug, &q.Quantity, &q.TargetUnitPrice, &q.Message, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// List lista cotizaciones con paginación, las más recientes primero.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.QuoteRequest, error) {
	query := `
		SELECT id, name, email, company, product_slug, quantity, target_unit_price, message, created_at
		FROM quote_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteRequest
	for rows.Next() {
		var q entity.QuoteRequest
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.ProductSlug, &q.Quantity, &q.TargetUnitPrice, &q.Message, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}
