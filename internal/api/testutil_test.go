package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joestump/contact-app/internal/api"
	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/store"
	"github.com/joestump/contact-app/internal/testutil"
)

// testEnv holds the router and the service behind it.
type testEnv struct {
	Router  http.Handler
	Service *contacts.Service
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with a real store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	svc := contacts.NewService(store.NewContactStore(testutil.NewTestDB(t)))
	router := api.NewAPIRouter(api.Deps{Contacts: svc, PageSize: 5})
	return &testEnv{Router: router, Service: svc}
}

// seedContact saves c through the service and returns the stored record.
func seedContact(t *testing.T, env *testEnv, c contacts.Contact) *contacts.Contact {
	t.Helper()
	saved, err := env.Service.Save(context.Background(), &c)
	if err != nil {
		t.Fatalf("seed contact %q: %v", c.Name, err)
	}
	return saved
}

// do sends a request with an optional JSON body through the router.
func do(t *testing.T, env *testEnv, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
	return v
}
