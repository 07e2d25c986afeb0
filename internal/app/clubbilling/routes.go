package clubbilling

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/clubhouse/club-billing/internal/http/handlers/billing/calculate"
	"github.com/clubhouse/club-billing/internal/http/handlers/billing/commit"
	"github.com/clubhouse/club-billing/internal/http/handlers/guestpasses"
	"github.com/clubhouse/club-billing/internal/http/handlers/session/recalculate"
	"github.com/clubhouse/club-billing/internal/http/handlers/usage"
	"github.com/clubhouse/club-billing/internal/http/middlewarectx"
	billingservice "github.com/clubhouse/club-billing/internal/services/billing"
	recalcservice "github.com/clubhouse/club-billing/internal/services/recalc"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, billingService *billingservice.BillingService, recalcService *recalcservice.RecalcService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/billing/calculate", calculate.New(logger, billingService).ServeHTTP)
		r.Post("/billing/commit", commit.New(logger, billingService).ServeHTTP)
		r.Post("/sessions/{id}/recalculate", recalculate.New(logger, recalcService).ServeHTTP)
		r.Get("/usage/{email}", usage.New(logger, billingService).ServeHTTP)
		r.Get("/guestpasses/{email}", guestpasses.New(logger, billingService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
