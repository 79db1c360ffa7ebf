package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/contact-app/internal/contacts"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Contacts *contacts.Service
	PageSize int
	Logger   *slog.Logger
}

// NewAPIRouter creates a chi sub-router for /api.
// All routes return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	registerContactRoutes(r, deps)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
