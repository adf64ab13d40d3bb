package service

import (
	"context"
	"errors"
	"sync"

	"sarita-industries/internal/domain"
	"sarita-industries/internal/repository"

	"github.com/google/uuid"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// Mock repositories for testing
type mockProductRepository struct {
	mu       sync.Mutex
	products []*domain.Product
	failing  bool
}

func newMockProductRepository(products ...*domain.Product) *mockProductRepository {
	return &mockProductRepository{products: products}
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errConnRefused
	}
	out := make([]*domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errConnRefused
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, errConnRefused
	}
	return len(m.products), nil
}

func (m *mockProductRepository) SeedIfEmpty(ctx context.Context, products []*domain.Product) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return false, errConnRefused
	}
	if len(m.products) > 0 {
		return false, nil
	}
	m.products = append(m.products, products...)
	return true, nil
}

type mockContactRepository struct {
	mu       sync.Mutex
	messages []*domain.ContactMessage
	failing  bool
}

func (m *mockContactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errConnRefused
	}
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errConnRefused
	}
	return append([]*domain.ContactMessage(nil), m.messages...), nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages), nil
}

type mockQuoteRepository struct {
	mu      sync.Mutex
	quotes  []*domain.QuoteRequest
	failing bool
}

func (m *mockQuoteRepository) Create(ctx context.Context, quote *domain.QuoteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errConnRefused
	}
	m.quotes = append(m.quotes, quote)
	return nil
}

func (m *mockQuoteRepository) List(ctx context.Context) ([]*domain.QuoteRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errConnRefused
	}
	return append([]*domain.QuoteRequest(nil), m.quotes...), nil
}

func (m *mockQuoteRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.quotes), nil
}
