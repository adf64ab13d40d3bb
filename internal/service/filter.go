package service

import (
	"strings"

	"sarita-industries/internal/domain"
)

// RelatedProductsLimit caps the related products shown next to a product
const RelatedProductsLimit = 3

// ProductFilter narrows a listing. Empty fields do not constrain it; set
// fields are combined with AND.
type ProductFilter struct {
	Category string
	Search   string
}

// IsZero reports whether the filter matches every product
func (f ProductFilter) IsZero() bool {
	return strings.TrimSpace(f.Category) == "" && strings.TrimSpace(f.Search) == ""
}

// Matches reports whether p satisfies every predicate of the filter
func (f ProductFilter) Matches(p *domain.Product) bool {
	if category := strings.TrimSpace(f.Category); category != "" {
		if !strings.EqualFold(p.Category, category) {
			return false
		}
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}

	return true
}

// FilterProducts keeps the products matching f, preserving their order
func FilterProducts(products []*domain.Product, f ProductFilter) []*domain.Product {
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// RelatedProducts returns up to limit other products from the same category
// as product, in catalog order.
func RelatedProducts(catalog []*domain.Product, product *domain.Product, limit int) []*domain.Product {
	related := make([]*domain.Product, 0, limit)
	for _, p := range catalog {
		if len(related) >= limit {
			break
		}
		if p.ID == product.ID || !strings.EqualFold(p.Category, product.Category) {
			continue
		}
		related = append(related, p)
	}
	return related
}
