// Package journalservice предоставляет маршруты для основного приложения.
package journalservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/journal-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/auth/updateprofile"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/category"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/create"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/list"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/read"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/remove"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/journal/update"
	"github.com/magabrotheeeer/journal-service/internal/http/handlers/summary"
	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokenParser middlewarectx.TokenParser,
	authService *services.AuthService, journalService *services.JournalService,
	summaryService *services.SummaryService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(tokenParser, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Put("/updateProfile", updateprofile.New(logger, authService).ServeHTTP)
		r.Post("/createjournal", create.New(logger, journalService).ServeHTTP)
		r.Get("/getAllJournals", list.New(logger, journalService).ServeHTTP)
		r.Get("/getSingleJournal/{id}", read.New(logger, journalService).ServeHTTP)
		r.Put("/updateJournal/{id}", update.New(logger, journalService).ServeHTTP)
		r.Delete("/deleteJournal/{id}", remove.New(logger, journalService).ServeHTTP)
		r.Get("/categoryJournals", category.New(logger, journalService).ServeHTTP)
		r.Get("/journalSummary", summary.New(logger, summaryService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
