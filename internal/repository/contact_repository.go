package repository

import (
	"context"
	"database/sql"
	"fmt"

	"sarita-industries/internal/domain"
)

// ContactRepository defines the interface for contact message storage
type ContactRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) error
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new instance of ContactRepository
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact message using parameterized queries
func (r *contactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		message.ID,
		message.Name,
		message.Email,
		toNullString(message.Phone),
		message.Subject,
		message.Message,
		message.Status,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// List returns stored messages, newest first
func (r *contactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.ContactMessage{}
	for rows.Next() {
		message := &domain.ContactMessage{}
		var phone sql.NullString
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&phone,
			&message.Subject,
			&message.Message,
			&message.Status,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		message.Phone = fromNullString(phone)
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
