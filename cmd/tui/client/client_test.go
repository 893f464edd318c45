package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/billow-app/billow/internal/models"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := New(serverURL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode":401,"message":"invalid email or password","error":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Login("user@example.com", "wrong")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Fatal("failed login should not be reported as an expired session")
	}
	if err.Error() != "invalid email or password" {
		t.Errorf("expected server message, got %q", err.Error())
	}
}

func TestExpiredSessionClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode":401,"message":"Invalid or expired token","error":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("stale-token")

	_, err := c.Me()
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if c.Token() != "" {
		t.Error("expected token to be cleared after 401")
	}

	stored, err := c.tokens.Load()
	if err == nil && stored != "" {
		t.Error("expected stored token to be cleared after 401")
	}
}

func TestWriteInvalidatesInvoiceCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet:
			hits++
			_ = json.NewEncoder(w).Encode(models.PaginatedInvoices{Data: []*models.Invoice{}})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("token")

	if _, err := c.ListInvoices("desc", 0, 10); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if _, err := c.ListInvoices("desc", 0, 10); err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected second list to hit the cache, server saw %d requests", hits)
	}

	if err := c.DeleteInvoice("some-id"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := c.ListInvoices("desc", 0, 10); err != nil {
		t.Fatalf("list after write failed: %v", err)
	}
	if hits != 2 {
		t.Errorf("expected write to invalidate the list cache, server saw %d requests", hits)
	}
}
