package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"
)

const (
	// DefaultTimeout bounds each individual HTTP call.
	DefaultTimeout = 30 * time.Second

	authEndpoint = "/security/authenticate"
)

// Config holds the settings for a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://192.168.1.10:28081/rest".
	BaseURL string
	// Timeout for each HTTP call (default 30s).
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
	// Logger (optional, defaults to a no-op logger).
	Logger hclog.Logger
}

// Client is an authenticated session against one API server. The
// bearer token is guarded by a mutex; the header set is recomputed
// from the current token on every request rather than mutated in
// place.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger

	mu    sync.Mutex
	token string
}

// New creates a client. No network call is made until Authenticate or
// one of the request methods is invoked.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger.Named("client"),
	}, nil
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsAuthenticated reports whether a bearer token is currently stored.
func (c *Client) IsAuthenticated() bool {
	return c.currentToken() != ""
}

// Authenticate logs in and stores the bearer token for all subsequent
// requests. A non-2xx response or a 2xx response without a
// discoverable token comes back as a failed Response with the stored
// token untouched; only transport failures are returned as errors.
func (c *Client) Authenticate(ctx context.Context, identifier, password string) (*Response, error) {
	body := map[string]string{
		"identifier": identifier,
		"password":   password,
	}
	resp, err := c.Request(ctx, http.MethodPost, authEndpoint, body, nil, false)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		c.logger.Warn("authentication rejected", "status", resp.StatusCode)
		return resp, nil
	}

	token := extractToken(resp.Data)
	if token == "" {
		resp.Success = false
		resp.Errors = append(resp.Errors, "authentication response contains no token")
		if resp.Message == "" {
			resp.Message = "authentication response contains no token"
		}
		return resp, nil
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.logger.Info("authenticated", "identifier", identifier)
	return resp, nil
}

// Logout clears the stored token. It is a local operation, always
// succeeds and is safe to call repeatedly, so `defer c.Logout()` after
// construction guarantees the session is cleared on every path.
func (c *Client) Logout() *Response {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	c.logger.Debug("logged out")
	return &Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "logged out",
	}
}

// Get issues an authenticated GET request.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil, params, true)
}

// Post issues an authenticated POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, params url.Values) (*Response, error) {
	return c.Request(ctx, http.MethodPost, endpoint, body, params, true)
}

// Put issues an authenticated PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any, params url.Values) (*Response, error) {
	return c.Request(ctx, http.MethodPut, endpoint, body, params, true)
}

// Delete issues an authenticated DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, params, true)
}

// Request is the generic dispatcher behind every call. The endpoint is
// joined to the base URL, the body (if any) is JSON-encoded, and the
// raw response is normalized. With requireAuth set and no stored
// token, ErrNotAuthenticated is returned before anything is sent.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, params url.Values, requireAuth bool) (*Response, error) {
	token := c.currentToken()
	if requireAuth && token == "" {
		return nil, ErrNotAuthenticated
	}

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, value := range c.headers(token) {
		req.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, URL: fullURL, Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: fullURL, Err: err}
	}

	resp := normalize(httpResp.StatusCode, http.StatusText(httpResp.StatusCode), httpResp.Header, raw)
	c.logger.Debug("request completed",
		"method", method,
		"endpoint", endpoint,
		"status", httpResp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

// headers builds the header set for one request from the current
// session state.
func (c *Client) headers(token string) map[string]string {
	h := map[string]string{
		"Content-Type":    "application/json",
		"Accept":          "application/json",
		"Accept-Language": "en",
	}
	if token != "" {
		h["Authorization"] = "Bearer " + token
	}
	return h
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// extractToken pulls the bearer token out of a login payload, which is
// either a plain {"token": ...} object or wraps it under "result".
func extractToken(data any) string {
	var payload struct {
		Token  string `mapstructure:"token"`
		Result struct {
			Token string `mapstructure:"token"`
		} `mapstructure:"result"`
	}
	if err := mapstructure.Decode(data, &payload); err != nil {
		return ""
	}
	if payload.Token != "" {
		return payload.Token
	}
	return payload.Result.Token
}
