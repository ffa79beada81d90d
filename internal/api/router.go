package api

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/counters/internal/store"
)

// Deps holds all dependencies required by the counter routes.
type Deps struct {
	Counters store.Counters
	// QueryTimeout bounds each store call; zero means only the request
	// context applies.
	QueryTimeout time.Duration
}

// RegisterRoutes adds the counter routes to r at the root of the path space.
func RegisterRoutes(r chi.Router, deps Deps) {
	registerCounterRoutes(r, deps.Counters, deps.QueryTimeout)
}
