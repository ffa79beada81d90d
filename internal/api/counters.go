package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/joestump/counters/internal/metrics"
	"github.com/joestump/counters/internal/store"
)

// countersAPIHandler serves the counter routes. Each request gets at most
// timeout to complete its store operation.
type countersAPIHandler struct {
	counters store.Counters
	timeout  time.Duration
}

// registerCounterRoutes registers the counter routes on r.
func registerCounterRoutes(r chi.Router, counters store.Counters, timeout time.Duration) {
	h := &countersAPIHandler{counters: counters, timeout: timeout}
	r.Get("/", h.List)
	r.Get("/add/{name}/{number}", h.Add)
	r.Get("/subtract/{name}/{number}", h.Subtract)
	r.Get("/status/{name}", h.Status)
}

// List returns every counter.
//
// @Summary      Home page
// @Description  Get all records in database
// @Tags         Home
// @Produce      json
// @Success      200  {array}   CounterResponse
// @Failure      500  {object}  ErrorResponse
// @Router       / [get]
func (h *countersAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	counters, err := h.counters.ListAll(ctx)
	observe("list", err)
	if err != nil {
		h.internalError(w, r, "list counters", err)
		return
	}

	resp := make([]CounterResponse, 0, len(counters))
	for _, c := range counters {
		resp = append(resp, toCounterResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add inserts a new counter row. It never merges with an existing counter
// of the same name.
//
// @Summary      Add a counter
// @Description  Inserts a new counter named {name} starting at {number}.
// @Tags         Counters
// @Produce      plain
// @Param        name    path      string   true  "Counter name"
// @Param        number  path      integer  true  "Initial value"  minimum(0)  maximum(2147483647)
// @Success      200     {string}  string   "Added Counter{id: 1, name: \"score\", counter: 5}"
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /add/{name}/{number} [get]
func (h *countersAPIHandler) Add(w http.ResponseWriter, r *http.Request) {
	p, err := parseCounterParams(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	c, err := h.counters.Add(ctx, p.Name, p.Number)
	observe("add", err)
	if err != nil {
		h.internalError(w, r, "add counter", err)
		return
	}
	writeText(w, "Added "+c.String())
}

// Subtract decrements the first counter named {name}.
//
// @Summary      Subtract from a counter
// @Description  Decrements the counter named {name} by {number}. Values may go negative.
// @Description  When several counters share the name, the oldest one is used.
// @Tags         Counters
// @Produce      plain
// @Param        name    path      string   true  "Counter name"
// @Param        number  path      integer  true  "Amount to subtract"  minimum(0)  maximum(2147483647)
// @Success      200     {string}  string   "Subtracted: Counter{id: 1, name: \"score\", counter: 3}"
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /subtract/{name}/{number} [get]
func (h *countersAPIHandler) Subtract(w http.ResponseWriter, r *http.Request) {
	p, err := parseCounterParams(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	c, err := h.counters.Subtract(ctx, p.Name, p.Number)
	observe("subtract", err)
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "counter not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.internalError(w, r, "subtract counter", err)
		return
	}
	writeText(w, "Subtracted: "+c.String())
}

// Status reports the counter named {name}.
//
// @Summary      Counter status
// @Description  Returns the counter named {name}. When several counters share the name, the oldest one is returned.
// @Tags         Counters
// @Produce      plain
// @Param        name  path      string  true  "Counter name"
// @Success      200   {string}  string  "Hello, Counter{id: 1, name: \"score\", counter: 3}"
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /status/{name} [get]
func (h *countersAPIHandler) Status(w http.ResponseWriter, r *http.Request) {
	name, err := parseName(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	c, err := h.counters.GetByName(ctx, name)
	observe("status", err)
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "counter not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.internalError(w, r, "get counter", err)
		return
	}
	writeText(w, "Hello, "+c.String())
}

func (h *countersAPIHandler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *countersAPIHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("store failure")
	WriteError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
}

func observe(op string, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, store.ErrNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	metrics.StoreOperationsTotal.WithLabelValues(op, outcome).Inc()
}
