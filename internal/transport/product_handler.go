package transport

import (
	"net/http"

	"sarita-industries/internal/middleware"
	"sarita-industries/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for the product catalog
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/init-products", h.InitProducts)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Get("/{id}/related", h.GetRelatedProducts)
	})
}

// InitProducts seeds the catalog when it is empty
func (h *ProductHandler) InitProducts(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.productService.InitProducts(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	message := "products already initialized"
	if seeded {
		message = "products initialized successfully"
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}

// ListProducts returns the catalog, optionally filtered by ?category= and ?search=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	related, err := h.productService.GetRelatedProducts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, related)
}
