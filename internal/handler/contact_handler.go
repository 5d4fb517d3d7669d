package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/streetdogs/backend/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /contact. name, email and message are all required.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req service.ContactInput
	if err := decodeJSON(w, r, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Invalid request body"})
		return
	}

	if _, err := h.contactService.Submit(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(envelope{Message: "All fields are required"})
			return
		}
		slog.Error("contact submit failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(envelope{Message: "Failed to send message", Error: err.Error()})
		return
	}

	_ = json.NewEncoder(w).Encode(envelope{Success: true, Message: "Message sent successfully!"})
}
