// Package main is the entry point for the hotel booking storefront gateway.
// It wires the backend and payment clients into the storefront flows and
// serves them over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	storefronthttp "github.com/hotel-search/hotel-booking-storefront/internal/adapter/http"
	"github.com/hotel-search/hotel-booking-storefront/internal/adapter/http/middleware"
	"github.com/hotel-search/hotel-booking-storefront/internal/adapter/payment"

	"github.com/hotel-search/hotel-booking-storefront/internal/adapter/backend"
	"github.com/hotel-search/hotel-booking-storefront/internal/config"
	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/sessionstore"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/timeutil"
	"github.com/hotel-search/hotel-booking-storefront/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	bootstrapTimeout = 15 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "hotel-storefront",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Configuration loaded")

	backendClient, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create backend client")
	}

	paymentClient, err := payment.New(payment.Config{
		BaseURL:        cfg.Payment.BaseURL,
		PublishableKey: cfg.Payment.PublishableKey,
		Timeout:        cfg.Payment.Timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create payment client")
	}

	clock := timeutil.NewRealClock()
	drafts := usecase.NewDraftStore(draftStore(cfg.Search.DraftDir, log), clock, log)
	sessions := usecase.NewSessionCache(backendClient, log)

	searches := usecase.NewSearchOrchestrator(backendClient, log)
	projector := usecase.NewQueryProjector(cfg.Search.DebounceDelay, func(q domain.DebouncedQuery) {
		searches.ApplyQuery(context.Background(), q)
	})
	projector.Attach(drafts)

	// Probe the backend session endpoint before serving; transient transport
	// errors at startup are retried, a definitive rejection is not.
	bootCtx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	session := sessions.Bootstrap(bootCtx)
	cancel()
	log.Info().Bool("logged_in", session.IsLoggedIn).Msg("Session bootstrapped")

	handler := storefronthttp.NewStorefrontHandler(
		backendClient,
		sessions,
		drafts,
		searches,
		usecase.BookingDeps{
			Hotels:   backendClient,
			Sessions: backendClient,
			Bookings: backendClient,
			Cards:    paymentClient,
		},
		clock,
		log,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	storefronthttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)

	projector.Close()
	searches.Close()
}

// draftStore selects the persistence backing for the search draft. A
// configured directory keeps the draft across restarts; failures to open it
// fall back to process memory.
func draftStore(dir string, log *logger.Logger) sessionstore.Store {
	if dir == "" {
		return sessionstore.NewMemoryStore()
	}
	store, err := sessionstore.NewFileStore(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Draft directory unavailable, keeping drafts in memory")
		return sessionstore.NewMemoryStore()
	}
	return store
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
