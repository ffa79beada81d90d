package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/counters/docs/swagger"
	"github.com/joestump/counters/internal/api"
	"github.com/joestump/counters/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Logger       zerolog.Logger
	Counters     store.Counters
	DB           Pinger
	QueryTimeout time.Duration
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(deps.Logger))
	r.Use(Metrics)
	r.Use(middleware.Recoverer)

	// Documentation. Registered before the counter routes so that no
	// counter pattern can shadow them.
	docs := NewDocsHandler()
	r.Get("/openapi.json", docs.OpenAPIJSON)
	r.Get("/openapi.yaml", docs.OpenAPIYAML)
	r.Get("/{group}/openapi.json", docs.GroupOpenAPIJSON)
	r.Get("/docs", http.RedirectHandler("/docs/", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))
	r.Get("/docs2", http.RedirectHandler("/docs2/", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs2/", docs.RapiDoc)

	health := NewHealthHandler(deps.DB, deps.QueryTimeout)
	r.Get("/healthz", health.Check)
	r.Handle("/metrics", promhttp.Handler())

	api.RegisterRoutes(r, api.Deps{
		Counters:     deps.Counters,
		QueryTimeout: deps.QueryTimeout,
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound, "route not found", "NOT_FOUND")
	})

	return r
}
