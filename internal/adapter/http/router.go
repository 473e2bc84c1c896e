package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gymops/cashcut/internal/adapter/http/handler"
	"github.com/gymops/cashcut/internal/adapter/http/middleware"
	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/infrastructure/auth"
	"github.com/gymops/cashcut/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CutHandler       *handler.CutHandler
	SyncHandler      *handler.SyncHandler
	UserHandler      *handler.UserHandler
	AuthHandler      *handler.AuthHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Cuts
			r.Route("/cuts", func(r chi.Router) {
				r.Get("/", cfg.CutHandler.List)
				r.Get("/{id}", cfg.CutHandler.Get)
				r.Get("/date/{date}", cfg.CutHandler.GetByDate)
				r.Get("/{id}/expense-sync", cfg.SyncHandler.Check)

				r.Group(func(r chi.Router) {
					if cfg.JWTManager != nil {
						r.Use(middleware.RequireRole(domain.RoleOperator))
					}
					r.Post("/", cfg.CutHandler.Create)
					r.Put("/{id}", cfg.CutHandler.Update)
					r.Post("/{id}/close", cfg.CutHandler.Close)
					r.Post("/{id}/expense-sync", cfg.SyncHandler.Adopt)
				})

				r.Group(func(r chi.Router) {
					if cfg.JWTManager != nil {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Delete("/{id}", cfg.CutHandler.Delete)
				})
			})

			// Expense ledger
			r.Get("/expenses/daily/{date}", cfg.SyncHandler.DailySummary)

			// Users
			r.Route("/users", func(r chi.Router) {
				if cfg.JWTManager != nil {
					r.Use(middleware.RequireRole(domain.RoleAdmin))
				}
				r.Post("/", cfg.UserHandler.Create)
				r.Get("/", cfg.UserHandler.List)
				r.Get("/{id}", cfg.UserHandler.Get)
				r.Put("/{id}", cfg.UserHandler.Update)
				r.Delete("/{id}", cfg.UserHandler.Delete)
			})
		})
	})

	return r
}
