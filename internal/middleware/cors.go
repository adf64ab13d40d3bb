package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORSMiddleware configures CORS for the site frontend. Credentials are only
// allowed when the origins are listed explicitly.
func CORSMiddleware(allowedOrigins []string, isDevelopment bool) func(http.Handler) http.Handler {
	// In development, allow all origins
	if isDevelopment || len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}

// DefaultMiddlewareStack returns a stack of commonly used middleware.
// Forwarding headers rewrite the client address only when trustProxy is set,
// since the rate limiter keys on that address.
func DefaultMiddlewareStack(trustProxy bool) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{middleware.RequestID}
	if trustProxy {
		stack = append(stack, middleware.RealIP)
	}
	return append(stack, middleware.Compress(5))
}
