package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/contact-app/docs/swagger"
	"github.com/joestump/contact-app/internal/api"
	"github.com/joestump/contact-app/internal/contacts"
)

// Pinger reports whether the backing store is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Contacts *contacts.Service
	PageSize int
	Logger   *slog.Logger
	// DB is nil when contacts are kept in memory.
	DB Pinger
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Health(deps.DB))
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI must be registered before the /api mount.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	r.Mount("/api", api.NewAPIRouter(api.Deps{
		Contacts: deps.Contacts,
		PageSize: deps.PageSize,
		Logger:   deps.Logger,
	}))

	return r
}
