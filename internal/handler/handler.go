package handler

import (
	"encoding/json"
	"net/http"

	"github.com/streetdogs/backend/internal/repository"
)

// Handler holds the cross-cutting endpoints (health, CORS).
type Handler struct {
	db         repository.DB
	corsOrigin string
}

func New(db repository.DB, corsOrigin string) *Handler {
	return &Handler{db: db, corsOrigin: corsOrigin}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		// ワイルドカードとクレデンシャルは併用できない
		if h.corsOrigin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// envelope is the response shape shared by the form endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	Error   string `json:"error,omitempty"`
}

// maxJSONBody caps the form endpoints' JSON bodies.
const maxJSONBody = 1 << 20

// decodeJSON reads at most maxJSONBody bytes of r's body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(v)
}
