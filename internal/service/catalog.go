package service

import "sarita-industries/internal/domain"

// DefaultCatalog returns the fixed product range seeded into an empty store
func DefaultCatalog() []domain.ProductSeed {
	return []domain.ProductSeed{
		{
			Name:        "Puddle Flanges",
			Description: "High-quality waterproofing solutions for concrete structures",
			Category:    "Waterproofing",
			ImageURL:    "https://images.unsplash.com/photo-1455165814004-1126a7199f9b",
			Features:    []string{"Corrosion resistant", "Easy installation", "Long-lasting durability", "Multiple sizes available"},
		},
		{
			Name:        "Concrete Buckets",
			Description: "Durable concrete transport solutions for construction sites",
			Category:    "Construction Equipment",
			ImageURL:    "https://images.unsplash.com/photo-1603814744450-36f978490b11",
			Features:    []string{"Heavy-duty construction", "Efficient pouring mechanism", "Easy maintenance", "Various capacities"},
		},
		{
			Name:        "Scaffolding Planks",
			Description: "Safe and reliable walking platforms for construction work",
			Category:    "Safety Equipment",
			ImageURL:    "https://images.unsplash.com/photo-1603816885871-c122a9ff8d40",
			Features:    []string{"Anti-slip surface", "Load tested", "Weather resistant", "Standardized dimensions"},
		},
	}
}
