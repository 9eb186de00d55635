package coinbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL     = "https://api.coinbase.com"
	defaultHTTPTimeout = 10 * time.Second
)

// Client wraps the Coinbase v2/v3 REST endpoints used by the assistant.
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       Authenticator
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API endpoint URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithAuthenticator injects the request authenticator used by private
// endpoints. Without one, account and order calls fail descriptively while
// public price lookups keep working.
func WithAuthenticator(auth Authenticator) Option {
	return func(c *Client) {
		c.auth = auth
	}
}

// NewClient constructs a Coinbase API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// NewClientFromConfig builds a client (and JWT authenticator when
// credentials are present) from configuration.
func NewClientFromConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("coinbase: config is required")
	}

	opts := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.HasCredentials() {
		auth, err := NewJWTAuthenticator(cfg.APIKey, cfg.APISecret, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAuthenticator(auth))
	}
	return NewClient(opts...), nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out. Non-2xx
// responses and transport failures come back as errors for the caller to
// treat as absence.
func (c *Client) getJSON(ctx context.Context, path string, authed bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("coinbase: build request: %w", err)
	}
	if authed {
		if c.auth == nil {
			return fmt.Errorf("coinbase: no credentials configured")
		}
		if err := c.auth.Authenticate(req, http.MethodGet, req.URL.Path); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coinbase: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("coinbase: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("coinbase: http status %d: %s", resp.StatusCode, string(body))
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("coinbase: decode response: %w", err)
		}
	}
	return nil
}

// postJSON issues an authenticated POST and returns status code plus raw
// body; order submission interprets both success and failure bodies.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("coinbase: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("coinbase: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.auth == nil {
		return 0, nil, fmt.Errorf("coinbase: no credentials configured")
	}
	if err := c.auth.Authenticate(req, http.MethodPost, req.URL.Path); err != nil {
		return 0, nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("coinbase: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("coinbase: read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
