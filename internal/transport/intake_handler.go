package transport

import (
	"net/http"

	"sarita-industries/internal/middleware"
	"sarita-industries/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmissionResponse acknowledges an accepted submission
type SubmissionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// IntakeHandler handles contact and quote submissions
type IntakeHandler struct {
	intakeService service.IntakeService
	logger        *zap.Logger
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(intakeService service.IntakeService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
		logger:        logger,
	}
}

// RegisterRoutes registers the public submission routes behind limiter and
// the read-back routes behind adminAuth.
func (h *IntakeHandler) RegisterRoutes(r chi.Router, limiter, adminAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(limiter)
		r.Post("/api/contact", h.SubmitContact)
		r.Post("/api/quotes", h.SubmitQuote)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminAuth)
		r.Get("/api/contact", h.ListContactMessages)
		r.Get("/api/quotes", h.ListQuoteRequests)
	})
}

func (h *IntakeHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactInput
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.logger.Debug("Contact decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.intakeService.SubmitContact(r.Context(), req)
	if err != nil {
		h.logger.Debug("Contact submission rejected", zap.Error(err))
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, SubmissionResponse{
		ID:      message.ID.String(),
		Message: "message received",
	})
}

// SubmitQuote accepts the complete payload of the quote form
func (h *IntakeHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteInput
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.logger.Debug("Quote decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.intakeService.SubmitQuote(r.Context(), req)
	if err != nil {
		h.logger.Debug("Quote submission rejected", zap.Error(err))
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, SubmissionResponse{
		ID:      quote.ID.String(),
		Message: "quote request received",
	})
}

func (h *IntakeHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.intakeService.ListContactMessages(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *IntakeHandler) ListQuoteRequests(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.intakeService.ListQuoteRequests(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, quotes)
}
