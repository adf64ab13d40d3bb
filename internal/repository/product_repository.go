package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sarita-industries/internal/database"
	"sarita-industries/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// seedLockID serializes catalog seeding across every API instance
var seedLockID = database.LockID("products", "seed")

// ProductRepository defines the interface for catalog data access.
// Products can only be added through SeedIfEmpty.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	SeedIfEmpty(ctx context.Context, products []*domain.Product) (bool, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, category, image_url, features, specifications, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var features pq.StringArray
	var specs []byte

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&features,
		&specs,
		&product.CreatedAt,
	); err != nil {
		return nil, err
	}

	product.Features = []string(features)
	if product.Features == nil {
		product.Features = []string{}
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &product.Specifications); err != nil {
			return nil, fmt.Errorf("failed to decode specifications: %w", err)
		}
	}

	return product, nil
}

// List returns the whole catalog in insertion order
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// SeedIfEmpty inserts products only when the catalog has no rows. The
// emptiness check and the inserts run in one transaction holding an advisory
// lock, so concurrent callers observe either an empty table or the complete
// catalog. It reports whether this call performed the seeding.
func (r *productRepository) SeedIfEmpty(ctx context.Context, products []*domain.Product) (seeded bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("tx rollback failed: %v (original err: %w)", rbErr, err)
			}
		}
	}()

	if err = database.AcquireXactLock(ctx, tx, seedLockID); err != nil {
		return false, err
	}

	var existing int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&existing); err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}

	if existing == 0 {
		query := `
			INSERT INTO products (id, name, description, category, image_url, features, specifications, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for _, product := range products {
			var specs []byte
			if len(product.Specifications) > 0 {
				if specs, err = json.Marshal(product.Specifications); err != nil {
					return false, fmt.Errorf("failed to encode specifications: %w", err)
				}
			}

			if _, err = tx.ExecContext(
				ctx,
				query,
				product.ID,
				product.Name,
				product.Description,
				product.Category,
				product.ImageURL,
				pq.StringArray(product.Features),
				specs,
				product.CreatedAt,
			); err != nil {
				return false, fmt.Errorf("failed to insert product %q: %w", product.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return existing == 0, nil
}
