package transport

import (
	"net/http"

	"sarita-industries/internal/middleware"
	"sarita-industries/internal/service"

	"github.com/go-chi/chi/v5"
)

// SiteHandler serves the API banner and company figures
type SiteHandler struct {
	statsService service.StatsService
}

func NewSiteHandler(statsService service.StatsService) *SiteHandler {
	return &SiteHandler{statsService: statsService}
}

func (h *SiteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api", h.Root)
	r.Get("/api/", h.Root)
	r.Get("/api/stats", h.GetStats)
}

func (h *SiteHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Sarita Industries API",
		"status":  "operational",
	})
}

func (h *SiteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.statsService.GetStats(r.Context()))
}
