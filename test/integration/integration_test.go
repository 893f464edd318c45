package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	serverURL        = getEnv("BILLOW_SERVER_URL", "http://localhost:3000")
	testUserEmail    = fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
	testUserPassword = "testPassword123"
	authToken        string
	invoiceID        string
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		fmt.Println("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func request(t *testing.T, method, path string, payload any) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, serverURL+path, &body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(serverURL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestUserRegistration(t *testing.T) {
	resp := request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
		"name":     "Test User",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	authToken = result.AccessToken
}

func TestUserLogin(t *testing.T) {
	authToken = ""
	resp := request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	authToken = result.AccessToken
}

func TestCreateInvoice(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token from previous tests")
	}

	resp := request(t, http.MethodPost, "/api/invoices", map[string]any{
		"vendor_name": "Integration Vendor",
		"amount":      321.50,
		"due_date":    "2027-01-15",
		"description": "Integration test invoice",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID == "" {
		t.Fatal("expected a non-empty invoice id")
	}
	invoiceID = result.ID
}

func TestListInvoices(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token from previous tests")
	}

	resp := request(t, http.MethodGet, "/api/invoices?page=0&limit=10", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Meta.Total < 1 {
		t.Errorf("expected at least one invoice, got total %d", result.Meta.Total)
	}
}

func TestDeleteInvoice(t *testing.T) {
	if authToken == "" || invoiceID == "" {
		t.Skip("no invoice from previous tests")
	}

	resp := request(t, http.MethodDelete, "/api/invoices/"+invoiceID, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}

	resp = request(t, http.MethodGet, "/api/invoices/"+invoiceID, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", resp.StatusCode)
	}
}

func TestUnauthorizedAccess(t *testing.T) {
	saved := authToken
	authToken = ""
	defer func() { authToken = saved }()

	resp := request(t, http.MethodGet, "/api/invoices", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", resp.StatusCode)
	}
}
