package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemhub/pkg/httpx"
)

type fakeChecker struct{ err error }

func (f fakeChecker) Ping(context.Context) error { return f.err }

func doHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	httpx.HealthHandler(checks)(w, r)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return w, body
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	w, body := doHealth(t, httpx.HealthChecks{
		Database: fakeChecker{},
		Redis:    fakeChecker{},
		EventBus: fakeChecker{},
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestHealthHandler_DegradedOnFailure(t *testing.T) {
	w, body := doHealth(t, httpx.HealthChecks{
		Database: fakeChecker{err: errors.New("connection refused")},
		Redis:    fakeChecker{},
		EventBus: fakeChecker{},
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if body["status"] != "degraded" {
		t.Errorf("expected degraded, got %q", body["status"])
	}
	if body["database"] != "unreachable" {
		t.Errorf("expected database unreachable, got %q", body["database"])
	}
	if body["redis"] != "ok" {
		t.Errorf("expected redis ok, got %q", body["redis"])
	}
}
