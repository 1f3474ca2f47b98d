package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testToken = "test-token-123"

// newAuthServer returns a server whose login endpoint issues token to
// identifier "admin" with password "secret" and records the
// Authorization header of every other request.
func newAuthServer(t *testing.T, token string) (*httptest.Server, *[]string) {
	t.Helper()
	var authHeaders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/security/authenticate" {
			var creds map[string]string
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if creds["identifier"] != "admin" || creds["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{
					"metadata": map[string]any{
						"status": []any{map[string]any{"error": "invalid credentials"}},
					},
					"result": nil,
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"result":   map[string]any{"token": token},
				"metadata": map[string]any{"status": []any{}},
			})
			return
		}
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"result":   []any{},
			"metadata": map[string]any{"status": []any{}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &authHeaders
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestAuthenticate_Success(t *testing.T) {
	srv, _ := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	resp, err := c.Authenticate(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if !c.IsAuthenticated() {
		t.Error("expected IsAuthenticated to be true")
	}
}

func TestAuthenticate_FlatTokenPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": testToken})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Authenticate(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if !resp.Success || !c.IsAuthenticated() {
		t.Error("expected authentication with flat token payload to succeed")
	}
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	srv, _ := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	resp, err := c.Authenticate(context.Background(), "admin", "wrong")
	if err != nil {
		t.Fatalf("expected API rejection, not error: %v", err)
	}
	if resp.Success {
		t.Error("expected failure response")
	}
	if len(resp.Errors) == 0 || resp.Errors[0] != "invalid credentials" {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
	if c.IsAuthenticated() {
		t.Error("token must not be stored after rejection")
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"result":   map[string]any{},
			"metadata": map[string]any{"status": []any{}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Authenticate(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Success {
		t.Error("expected failure when 2xx response has no token")
	}
	if c.IsAuthenticated() {
		t.Error("token must not be stored")
	}
}

func TestRequest_RequiresToken(t *testing.T) {
	srv, headers := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	_, err := c.Get(context.Background(), "/core/projects", nil)
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(*headers) != 0 {
		t.Error("no request must be sent without a token")
	}
}

func TestRequest_OptOutOfAuth(t *testing.T) {
	srv, headers := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	resp, err := c.Request(context.Background(), http.MethodGet, "/core/projects", nil, nil, false)
	if err != nil {
		t.Fatalf("unauthenticated request failed: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success, got %+v", resp)
	}
	if len(*headers) != 1 || (*headers)[0] != "" {
		t.Errorf("expected no Authorization header, got %v", *headers)
	}
}

func TestBearerHeaderCarriedOnEveryCall(t *testing.T) {
	srv, headers := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	if _, err := c.Authenticate(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if _, err := c.Get(context.Background(), "/core/projects", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := c.Post(context.Background(), "/core/projects", map[string]string{"name": "x"}, nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if len(*headers) != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", len(*headers))
	}
	for i, h := range *headers {
		if h != "Bearer "+testToken {
			t.Errorf("request %d: unexpected Authorization header %q", i, h)
		}
	}
}

func TestLogout_Idempotent(t *testing.T) {
	srv, _ := newAuthServer(t, testToken)
	c := newTestClient(t, srv.URL)

	if _, err := c.Authenticate(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	first := c.Logout()
	second := c.Logout()
	if !first.Success || !second.Success {
		t.Error("logout must always report success")
	}
	if c.IsAuthenticated() {
		t.Error("expected token cleared")
	}
}

func TestTransportErrorIsRaised(t *testing.T) {
	srv, _ := newAuthServer(t, testToken)
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.Authenticate(context.Background(), "admin", "secret")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.Method != http.MethodPost {
		t.Errorf("unexpected method in error: %s", reqErr.Method)
	}
}

func TestTokenExpiresAt(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	srv, _ := newAuthServer(t, signed)
	c := newTestClient(t, srv.URL)

	if _, ok := c.TokenExpiresAt(); ok {
		t.Error("expected no expiry before authentication")
	}

	if _, err := c.Authenticate(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	got, ok := c.TokenExpiresAt()
	if !ok {
		t.Fatal("expected an expiry")
	}
	if !got.Equal(expiry) {
		t.Errorf("expected expiry %v, got %v", expiry, got)
	}
}
