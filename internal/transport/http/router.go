package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bloglist/internal/handler"
	"bloglist/internal/httputil"
	"bloglist/internal/repository"
	"bloglist/internal/service"
	authmw "bloglist/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler  *handler.AuthHandler
	UserHandler  *handler.UserHandler
	BlogHandler  *handler.BlogHandler
	StatsHandler *handler.StatsHandler

	TokenService *service.TokenService
	UserRepo     repository.UserRepository
}

// NewRouter creates and configures a new Chi router with all route groups.
// The token extractor runs on every request; whether identity is required
// is decided per route group.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(authmw.TokenExtractor)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/login", cfg.AuthHandler.Login)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", cfg.UserHandler.Register)
		r.Get("/", cfg.UserHandler.List)
	})

	r.Route("/api/blogs", func(r chi.Router) {
		// Reads resolve identity when a token is present but never demand one.
		r.With(authmw.OptionalUser(cfg.TokenService, cfg.UserRepo)).Get("/", cfg.BlogHandler.List)
		r.Get("/stats", cfg.StatsHandler.Get)

		// Mutations pass the full gate: extract, verify, resolve user.
		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireUser(cfg.TokenService, cfg.UserRepo))
			r.Post("/", cfg.BlogHandler.Create)
			r.Put("/{id}", cfg.BlogHandler.Update)
			r.Delete("/{id}", cfg.BlogHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusNotFound, "unknown endpoint")
	})

	return r
}
