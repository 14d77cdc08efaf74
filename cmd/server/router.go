package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/osconstruct/construct-api/internal/api"
	"github.com/osconstruct/construct-api/internal/api/middleware"
	"github.com/osconstruct/construct-api/internal/config"
	"github.com/osconstruct/construct-api/internal/platform/postgres"
	"github.com/osconstruct/construct-api/internal/service/auth"
)

// routerDeps bundles everything newRouter needs so main stays a linear
// wiring sequence.
type routerDeps struct {
	cfg       *config.Config
	db        *sql.DB
	tokens    auth.TokenService
	passwords auth.PasswordVerifier
	validator *api.Validator
	authMW    *middleware.AuthMiddleware
}

// newRouter builds the full route tree. Read endpoints are public;
// writes require authentication, and company deletion additionally
// requires the admin role.
func newRouter(deps routerDeps) http.Handler {
	companies := postgres.NewCompanyStore(deps.db)
	services := postgres.NewServiceStore(deps.db)
	projects := postgres.NewProjectStore(deps.db)
	employees := postgres.NewEmployeeStore(deps.db)
	users := postgres.NewUserStore(deps.db)

	authHandler := api.NewAuthHandler(users, deps.passwords, deps.tokens, deps.validator)
	companyHandler := api.NewCompanyHandler(companies, deps.validator)
	serviceHandler := api.NewServiceHandler(companies, services, deps.validator)
	projectHandler := api.NewProjectHandler(companies, projects, deps.validator)
	employeeHandler := api.NewEmployeeHandler(companies, employees, deps.validator)
	healthHandler := api.NewHealthHandler(deps.db, deps.cfg.Server.Environment)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.cfg.Server.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
		if limit := deps.cfg.Server.RateLimitPerMinute; limit > 0 {
			r.Use(httprate.LimitByIP(limit, time.Minute))
		}

		r.Get("/health", healthHandler.Check)
		r.Post("/auth/login", authHandler.Login)

		// Public reads.
		r.Get("/companies", companyHandler.List)
		r.Get("/companies/{company_id}", companyHandler.Get)
		r.Get("/companies/{company_id}/summary", companyHandler.Summary)
		r.Get("/companies/{company_id}/services", serviceHandler.List)
		r.Get("/companies/{company_id}/projects", projectHandler.List)
		r.Get("/companies/{company_id}/employees", employeeHandler.List)

		// Authenticated writes.
		r.Group(func(r chi.Router) {
			r.Use(deps.authMW.Authenticate)

			r.Post("/companies", companyHandler.Create)
			r.Put("/companies/{company_id}", companyHandler.Update)
			r.Post("/companies/{company_id}/services", serviceHandler.Create)
			r.Post("/companies/{company_id}/projects", projectHandler.Create)
			r.Post("/companies/{company_id}/employees", employeeHandler.Create)
			r.Post("/employees/{employee_id}/transfer", employeeHandler.Transfer)

			// Destructive; restricted to the admin allow-list.
			r.With(deps.authMW.RequireAdmin).Delete("/companies/{company_id}", companyHandler.Delete)
		})
	})

	return r
}
