// Package backend is the typed client for the storefront's REST backend.
// It encodes requests the way the backend expects (repeated array query
// parameters, multipart listing submissions, cookie-credentialed sessions)
// and decodes the success-envelope every endpoint speaks.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// DefaultTimeout bounds each backend round trip.
const DefaultTimeout = 10 * time.Second

// Config holds backend client settings.
type Config struct {
	// BaseURL is the backend origin (e.g. "https://api.example.com")
	BaseURL string

	// Timeout bounds each request; DefaultTimeout when zero
	Timeout time.Duration
}

// Client talks to the backend REST API. A cookie jar carries the session
// cookie across credentialed endpoints, matching the backend's cookie-based
// authentication.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *logger.Logger
}

// New creates a backend client.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base URL must be absolute, got %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		log: log.WithComponent("backend"),
	}, nil
}

// envelope is the backend's uniform response shape.
type envelope[T any] struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       T                  `json:"data"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

// request describes one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	wantStatus  int
}

// call runs one backend round trip and decodes the envelope. A response that
// is not the wanted status, or whose envelope says success:false, becomes a
// *domain.BackendError carrying the backend's message verbatim.
func call[T any](ctx context.Context, c *Client, req request) (*envelope[T], error) {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + req.path
	if req.query != nil {
		u.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), req.body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.method, req.path, err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	var env envelope[T]
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		if resp.StatusCode != req.wantStatus {
			return nil, domain.NewBackendError(resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, fmt.Errorf("decode %s %s response: %w", req.method, req.path, decodeErr)
	}

	if resp.StatusCode != req.wantStatus || !env.Success {
		return nil, domain.NewBackendError(resp.StatusCode, env.Message)
	}
	return &env, nil
}

// jsonBody serializes v for a JSON request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Compile-time checks that the client satisfies every backend port.
var (
	_ domain.HotelSearcher  = (*Client)(nil)
	_ domain.HotelReader    = (*Client)(nil)
	_ domain.SessionBackend = (*Client)(nil)
	_ domain.BookingBackend = (*Client)(nil)
	_ domain.OwnerBackend   = (*Client)(nil)
)
