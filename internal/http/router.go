package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/ink-to-doc/docs"
	"github.com/rogerio-castellano/ink-to-doc/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Credential endpoints are rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/api/auth/register", handlers.RegisterHandler)
		r.Post("/api/auth/login", handlers.LoginHandler)
	})

	r.Post("/upload", handlers.UploadHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/api/auth/me", handlers.CurrentUserHandler)
		r.Get("/api/user/profile", handlers.GetProfileHandler)
		r.Put("/api/user/profile", handlers.UpdateProfileHandler)
		r.Delete("/api/user/account", handlers.DeleteAccountHandler)
	})

	return r
}
