package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerMock struct {
	PingFunc func(ctx context.Context) error
}

func (m *pingerMock) Ping(ctx context.Context) error { return m.PingFunc(ctx) }

func TestHealthLive_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{
		PingFunc: func(context.Context) error {
			t.Error("liveness must not touch the database")
			return nil
		},
	}, "1.2.3")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", resp.Version)
	}
	if resp.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestHealthReady_DatabaseUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{
		PingFunc: func(context.Context) error { return nil },
	}, "dev")

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthReady_DatabaseDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&pingerMock{
		PingFunc: func(context.Context) error { return errors.New("connection refused") },
	}, "dev")

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "down" {
		t.Errorf("expected status down, got %q", resp.Status)
	}
	if resp.Version != "" {
		t.Error("version should be omitted when the database is down")
	}
}
