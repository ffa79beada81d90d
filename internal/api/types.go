package api

import "github.com/joestump/counters/internal/store"

// CounterResponse is the JSON representation of a single counter.
type CounterResponse struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"score"`
	Counter int64  `json:"counter" example:"3"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"counter not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}

func toCounterResponse(c *store.Counter) CounterResponse {
	return CounterResponse{ID: c.ID, Name: c.Name, Counter: c.Counter}
}
