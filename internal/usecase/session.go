package usecase

import (
	"context"
	"sync"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/retry"
)

// SessionCache holds the authenticated-session probe result. The cache has no
// local expiry; it is invalidated explicitly after login, registration and
// logout, and the next read re-probes the backend. A probe rejection means
// logged out, never an error state.
type SessionCache struct {
	backend domain.SessionBackend
	log     *logger.Logger

	mu      sync.Mutex
	session *domain.Session
}

// NewSessionCache creates an empty session cache.
func NewSessionCache(backend domain.SessionBackend, log *logger.Logger) *SessionCache {
	return &SessionCache{
		backend: backend,
		log:     log.WithComponent("session"),
	}
}

// Current returns the cached session, probing the backend when the cache is
// empty.
func (c *SessionCache) Current(ctx context.Context) domain.Session {
	c.mu.Lock()
	if c.session != nil {
		session := *c.session
		c.mu.Unlock()
		return session
	}
	c.mu.Unlock()

	session := c.probe(ctx)

	c.mu.Lock()
	c.session = &session
	c.mu.Unlock()
	return session
}

// IsLoggedIn reports whether the current session is authenticated.
func (c *SessionCache) IsLoggedIn(ctx context.Context) bool {
	return c.Current(ctx).IsLoggedIn
}

// Invalidate clears the cache so the next read re-probes.
func (c *SessionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

// Login authenticates and refreshes the session cache.
func (c *SessionCache) Login(ctx context.Context, creds domain.Credentials) error {
	if err := c.backend.Login(ctx, creds); err != nil {
		return err
	}
	c.Invalidate()
	c.Current(ctx)
	return nil
}

// Register creates an account and refreshes the session cache.
func (c *SessionCache) Register(ctx context.Context, reg domain.Registration) error {
	if err := c.backend.Register(ctx, reg); err != nil {
		return err
	}
	c.Invalidate()
	c.Current(ctx)
	return nil
}

// Logout ends the session. The cache flips to anonymous even if the backend
// call fails; the cookie may already be gone.
func (c *SessionCache) Logout(ctx context.Context) error {
	err := c.backend.Logout(ctx)
	c.mu.Lock()
	anon := domain.Anonymous()
	c.session = &anon
	c.mu.Unlock()
	return err
}

// Bootstrap probes the session at startup, retrying transient transport
// errors so a flaky connection does not leave the app looking logged out.
// Backend rejections are permanent: they mean logged out, not "try again".
func (c *SessionCache) Bootstrap(ctx context.Context) domain.Session {
	cfg := retry.SessionProbeConfig.WithRetryIf(func(err error) bool {
		if _, ok := domain.AsBackendError(err); ok {
			return false
		}
		return retry.SkipPermanent(err)
	})

	session, err := retry.DoWithResult(ctx, func() (domain.Session, error) {
		if err := c.backend.ValidateToken(ctx); err != nil {
			if _, ok := domain.AsBackendError(err); ok {
				return domain.Anonymous(), nil
			}
			return domain.Session{}, err
		}
		return c.loggedInSession(ctx), nil
	}, cfg)
	if err != nil {
		c.log.Warn().Err(err).Msg("Session bootstrap failed; treating as anonymous")
		session = domain.Anonymous()
	}

	c.mu.Lock()
	c.session = &session
	c.mu.Unlock()
	return session
}

// probe runs a single validate-token round trip. Any failure means logged out.
func (c *SessionCache) probe(ctx context.Context) domain.Session {
	if err := c.backend.ValidateToken(ctx); err != nil {
		c.log.Debug().Err(err).Msg("Session probe rejected")
		return domain.Anonymous()
	}
	return c.loggedInSession(ctx)
}

// loggedInSession decorates a validated session with the account details.
// A failed detail fetch still counts as logged in.
func (c *SessionCache) loggedInSession(ctx context.Context) domain.Session {
	user, err := c.backend.CurrentUser(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("Current-user fetch failed")
		return domain.Session{IsLoggedIn: true}
	}
	return domain.Session{IsLoggedIn: true, User: user}
}
