package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// Register implements domain.SessionBackend. The backend answers 201 on
// success.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	body, err := jsonBody(reg)
	if err != nil {
		return err
	}
	_, err = call[json.RawMessage](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/users/register",
		body:        body,
		contentType: "application/json",
		wantStatus:  http.StatusCreated,
	})
	return err
}

// Login implements domain.SessionBackend. The session cookie lands in the
// client's jar.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) error {
	body, err := jsonBody(creds)
	if err != nil {
		return err
	}
	_, err = call[json.RawMessage](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        body,
		contentType: "application/json",
		wantStatus:  http.StatusOK,
	})
	return err
}

// Logout implements domain.SessionBackend.
func (c *Client) Logout(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, request{
		method:     http.MethodPost,
		path:       "/api/auth/logout",
		wantStatus: http.StatusOK,
	})
	return err
}

// ValidateToken implements domain.SessionBackend: the session probe. A
// rejection means logged out.
func (c *Client) ValidateToken(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/users/validate-token",
		wantStatus: http.StatusOK,
	})
	return err
}

// CurrentUser implements domain.SessionBackend.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	env, err := call[domain.User](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/users/me",
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
