package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows browser clients from any origin, matching the behavior the
// stored-document frontends already rely on.
func Cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
