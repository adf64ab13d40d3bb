package repository

import (
	"context"
	"database/sql"
	"fmt"

	"sarita-industries/internal/domain"
)

// QuoteRepository defines the interface for quote request storage
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.QuoteRequest) error
	List(ctx context.Context) ([]*domain.QuoteRequest, error)
}

type quoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new instance of QuoteRepository
func NewQuoteRepository(db *sql.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (id, name, email, phone, company, product_interest, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.Name,
		quote.Email,
		toNullString(quote.Phone),
		quote.Company,
		toNullString(quote.ProductInterest),
		quote.Message,
		quote.Status,
		quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quote request: %w", err)
	}

	return nil
}

// List returns stored quote requests, newest first
func (r *quoteRepository) List(ctx context.Context) ([]*domain.QuoteRequest, error) {
	query := `
		SELECT id, name, email, phone, company, product_interest, message, status, created_at
		FROM quote_requests
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	defer rows.Close()

	quotes := []*domain.QuoteRequest{}
	for rows.Next() {
		quote := &domain.QuoteRequest{}
		var phone, interest sql.NullString
		if err := rows.Scan(
			&quote.ID,
			&quote.Name,
			&quote.Email,
			&phone,
			&quote.Company,
			&interest,
			&quote.Message,
			&quote.Status,
			&quote.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote request: %w", err)
		}
		quote.Phone = fromNullString(phone)
		quote.ProductInterest = fromNullString(interest)
		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote requests: %w", err)
	}

	return quotes, nil
}
