package service

import (
	"context"
	"errors"
	"time"

	"sarita-industries/internal/domain"
	"sarita-industries/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService defines catalog seeding and read access
type ProductService interface {
	InitProducts(ctx context.Context) (bool, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetRelatedProducts(ctx context.Context, id string) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	catalog     []domain.ProductSeed
	logger      *zap.Logger
	now         func() time.Time
}

// NewProductService creates a ProductService seeding the given catalog
func NewProductService(productRepo repository.ProductRepository, catalog []domain.ProductSeed, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		catalog:     catalog,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// InitProducts seeds the catalog unless the store already holds products and
// reports whether this call did the seeding. Safe to call on every page load.
func (s *productService) InitProducts(ctx context.Context) (bool, error) {
	now := s.now()
	products := make([]*domain.Product, 0, len(s.catalog))
	for _, seed := range s.catalog {
		products = append(products, seed.NewProduct(now))
	}

	seeded, err := s.productRepo.SeedIfEmpty(ctx, products)
	if err != nil {
		return false, storageError("init products", err)
	}

	if seeded {
		s.logger.Info("Product catalog seeded", zap.Int("count", len(products)))
	} else {
		s.logger.Debug("Product catalog already initialized")
	}
	return seeded, nil
}

// ListProducts returns the catalog in store order, narrowed by filter
func (s *productService) ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, storageError("list products", err)
	}

	if filter.IsZero() {
		return products, nil
	}
	return FilterProducts(products, filter), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	// An identifier that is not a UUID cannot name a stored product
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("get product", err)
	}

	return product, nil
}

// GetRelatedProducts returns the products sharing the category of id
func (s *productService) GetRelatedProducts(ctx context.Context, id string) ([]*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, storageError("list products", err)
	}

	return RelatedProducts(catalog, product, RelatedProductsLimit), nil
}
