package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// healthResponse reports whether the record store answers and how fast.
type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
	PingMS int64  `json:"pingMs"`
	Error  string `json:"error,omitempty"`
}

// namedStore is implemented by stores that can say which backend they are.
type namedStore interface {
	Name() string
}

// Health handles GET /api/health. It answers 503 when the store ping fails
// or does not finish within healthPingTimeout.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok"}
	if n, ok := h.db.(namedStore); ok {
		resp.Store = n.Name()
	}

	start := time.Now()
	err := h.db.Ping(ctx)
	resp.PingMS = time.Since(start).Milliseconds()

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
