// Package payment is the direct client for the card payment provider. Card
// details go straight here and never pass through the backend; the backend
// only ever sees the resulting intent ID.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// DefaultTimeout bounds each provider round trip.
const DefaultTimeout = 15 * time.Second

// Config holds payment provider settings.
type Config struct {
	// BaseURL is the provider's API origin
	BaseURL string

	// PublishableKey authorizes client-side confirmation calls
	PublishableKey string

	// Timeout bounds each request; DefaultTimeout when zero
	Timeout time.Duration
}

// Client confirms card charges against the payment provider.
type Client struct {
	baseURL *url.URL
	key     string
	http    *http.Client
	log     *logger.Logger
}

var _ domain.CardConfirmer = (*Client)(nil)

// New creates a payment provider client.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("payment base URL must be absolute, got %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: base,
		key:     cfg.PublishableKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.WithComponent("payment"),
	}, nil
}

// confirmResponse is the provider's intent representation after a
// confirmation attempt.
type confirmResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ConfirmCardPayment implements domain.CardConfirmer. The intent ID is
// derived from the client secret, which the provider formats as
// "<intent-id>_secret_<nonce>". The returned ID comes from the provider's
// response and may differ from the derived one.
func (c *Client) ConfirmCardPayment(ctx context.Context, clientSecret string, card domain.CardDetails) (string, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("client_secret", clientSecret)
	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", card.Number)
	form.Set("payment_method_data[card][exp_month]", strconv.Itoa(card.ExpMonth))
	form.Set("payment_method_data[card][exp_year]", strconv.Itoa(card.ExpYear))
	form.Set("payment_method_data[card][cvc]", card.CVC)

	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/payment_intents/" + intentID + "/confirm"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("confirm payment intent %s: %w", intentID, err)
	}
	defer resp.Body.Close()

	var confirmed confirmResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return "", fmt.Errorf("decode confirm response for %s: %w", intentID, err)
	}

	if confirmed.Error != nil {
		c.log.Warn().
			Str("payment_intent_id", intentID).
			Str("decline_code", confirmed.Error.Code).
			Msg("card confirmation declined")
		return "", &domain.CardDeclinedError{
			Code:    confirmed.Error.Code,
			Message: confirmed.Error.Message,
		}
	}
	if resp.StatusCode != http.StatusOK || confirmed.Status != "succeeded" {
		return "", &domain.CardDeclinedError{
			Code:    confirmed.Status,
			Message: fmt.Sprintf("payment intent %s not confirmed (status %q)", intentID, confirmed.Status),
		}
	}

	if confirmed.ID != "" && confirmed.ID != intentID {
		c.log.Debug().
			Str("requested_id", intentID).
			Str("confirmed_id", confirmed.ID).
			Msg("provider rotated intent ID on confirmation")
		return confirmed.ID, nil
	}
	return intentID, nil
}

// intentIDFromSecret extracts the intent ID prefix from a client secret.
func intentIDFromSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret")
	if !found || id == "" {
		return "", fmt.Errorf("%w: malformed payment client secret", domain.ErrInvalidRequest)
	}
	return id, nil
}
