package handlers

import (
	"net/http"

	"github.com/billow-app/billow/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	Auth     *AuthHandler
	Invoices *InvoiceHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	CORSOrigins    []string
}

// NewRouter wires the HTTP surface. Everything lives under /api; invoice
// routes and /api/auth/me sit behind the token guard.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", cfg.Auth.Login)
		r.Post("/auth/register", cfg.Auth.Register)

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.RequireAuth)

			r.Get("/auth/me", cfg.Auth.Me)

			r.Get("/invoices/all", cfg.Invoices.ListAll)
			r.Get("/invoices", cfg.Invoices.List)
			r.Post("/invoices", cfg.Invoices.Create)
			r.Get("/invoices/{id}", cfg.Invoices.Get)
			r.Patch("/invoices/{id}", cfg.Invoices.Update)
			r.Delete("/invoices/{id}", cfg.Invoices.Delete)
			r.Get("/invoices/{id}/pdf", cfg.Invoices.PDF)
		})
	})

	return r
}
