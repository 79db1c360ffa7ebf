package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/handler"
	"github.com/joestump/contact-app/internal/store"
	"github.com/joestump/contact-app/internal/testutil"
)

type brokenDB struct{}

func (brokenDB) PingContext(context.Context) error { return errors.New("connection refused") }

func newRouter(t *testing.T, db handler.Pinger) http.Handler {
	t.Helper()
	svc := contacts.NewService(store.NewMemoryStore(contacts.Contact{Name: "Alice"}))
	return handler.NewRouter(handler.Deps{Contacts: svc, PageSize: 5, DB: db})
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		db   func(t *testing.T) handler.Pinger
		want int
	}{
		{"memory", func(*testing.T) handler.Pinger { return nil }, http.StatusOK},
		{"sqlite", func(t *testing.T) handler.Pinger { return testutil.NewTestDB(t) }, http.StatusOK},
		{"unreachable", func(*testing.T) handler.Pinger { return brokenDB{} }, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t, tt.db(t)).ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRouter_MountsAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/contacts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Alice"`) {
		t.Errorf("body = %s, want Alice listed", rec.Body.String())
	}
}

func TestRouter_LocationIncludesMountPrefix(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contacts", strings.NewReader(`{"name":"Bob"}`))
	newRouter(t, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api/contacts/2" {
		t.Errorf("Location = %q, want /api/contacts/2", loc)
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	router := newRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Header().Get(handler.RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(handler.RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(t, nil)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/contacts/count", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"contacts_total", `route="/api/contacts/count"`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
