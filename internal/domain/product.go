package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item of the company catalog
type Product struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	Name           string            `json:"name" db:"name"`
	Description    string            `json:"description" db:"description"`
	Category       string            `json:"category" db:"category"`
	ImageURL       string            `json:"image_url" db:"image_url"`
	Features       []string          `json:"features" db:"features"`
	Specifications map[string]string `json:"specifications,omitempty" db:"specifications"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}

// ProductSeed is a catalog entry before it is assigned an identity
type ProductSeed struct {
	Name           string
	Description    string
	Category       string
	ImageURL       string
	Features       []string
	Specifications map[string]string
}

// NewProduct assigns a fresh identifier to a catalog entry
func (s ProductSeed) NewProduct(now time.Time) *Product {
	features := make([]string, len(s.Features))
	copy(features, s.Features)

	var specs map[string]string
	if len(s.Specifications) > 0 {
		specs = make(map[string]string, len(s.Specifications))
		for k, v := range s.Specifications {
			specs[k] = v
		}
	}

	return &Product{
		ID:             uuid.New(),
		Name:           s.Name,
		Description:    s.Description,
		Category:       s.Category,
		ImageURL:       s.ImageURL,
		Features:       features,
		Specifications: specs,
		CreatedAt:      now,
	}
}
