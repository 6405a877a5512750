// Package handler serves liveness/readiness over HTTP for load balancers and CI.
package handler

import (
	"context"
	"net/http"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/response"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves GET /health.
type Handler struct {
	db Pinger
}

// NewHandler returns a health handler. db may be nil; the check then only
// reports process liveness.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Check returns 200 when the process is up and the store answers a ping,
// 503 when the store does not.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
