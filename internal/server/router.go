package server

import (
	"net/http"
	"time"

	"cartdesk-backend/internal/config"
	"cartdesk-backend/internal/domain"
	"cartdesk-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	inventory handler.InventoryHandler,
	events handler.EventHandler,
	goals handler.GoalHandler,
	cash handler.CashHandler,
	dashboard handler.DashboardHandler,
	home handler.HomeHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	auth.RegisterRoutes(r)
	home.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		auth.RegisterProtectedRoutes(pr)
		// staff-level (staff/owner)
		pr.Group(func(sr chi.Router) {
			sr.Use(RequireRole(domain.RoleOwner, domain.RoleStaff))
			inventory.RegisterRoutes(sr)
			events.RegisterRoutes(sr)
			goals.RegisterRoutes(sr)
		})
		// owner-level
		pr.Group(func(or chi.Router) {
			or.Use(RequireRole(domain.RoleOwner))
			cash.RegisterRoutes(or)
			dashboard.RegisterRoutes(or)
		})
	})

	return r
}
