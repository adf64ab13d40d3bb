package transport

import (
	"errors"
	"net/http"

	"sarita-industries/internal/middleware"
	"sarita-industries/internal/service"

	"go.uber.org/zap"
)

// respondWithServiceError maps service errors onto HTTP responses
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, service.ErrInvalidInput):
		if fieldErrors := middleware.FormatValidationErrors(err); len(fieldErrors) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, service.ErrStorageUnavailable):
		logger.Error("Storage unavailable", zap.Error(err))
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "service temporarily unavailable, please try again")
	default:
		logger.Error("Unexpected service error", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
