package middleware

import (
	"net/http"

	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/models"
)

// Recovery converts handler panics into 500 responses instead of
// killing the connection.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered: %v (%s %s)", rec, r.Method, r.URL.Path)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					writeJSON(w, models.ErrorResponse{
						StatusCode: http.StatusInternalServerError,
						Message:    "Internal server error",
						Error:      "Internal Server Error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
