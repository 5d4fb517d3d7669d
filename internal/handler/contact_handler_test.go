package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/streetdogs/backend/internal/model"
	"github.com/streetdogs/backend/internal/service"
)

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured service.ContactInput
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
			captured = in
			return &model.ContactMessage{ID: "c1"}, nil
		},
	})

	body := `{"email":"test@example.com","name":"Alice","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Name != "Alice" || captured.Message != "Hello!" {
		t.Errorf("unexpected input: %+v", captured)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success || resp.Message != "Message sent successfully!" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
			return nil, service.ErrMissingFields
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp.Success {
		t.Error("expected success=false")
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_BodyTooLarge(t *testing.T) {
	called := false
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
			called = true
			return &model.ContactMessage{ID: "c1"}, nil
		},
	})

	body := `{"name":"A","email":"a@x.io","message":"` + strings.Repeat("x", maxJSONBody+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("oversized body must not reach the service")
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
			return nil, errors.New("db down")
		},
	})

	body := `{"email":"a@x.io","name":"A","message":"m"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp.Error != "db down" {
		t.Errorf("error = %q, want db down", resp.Error)
	}
}
