package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Houeta/employee-service/internal/config"
)

// Run serves handler on the configured port until ctx is canceled, then shuts the server
// down gracefully within cfg.ShutdownTimeout.
//
// Parameters:
// - ctx: A context.Context whose cancellation stops the server.
// - log: A logger for logging server events and errors.
// - handler: The HTTP handler to serve.
// - cfg: Port and timeouts of the server.
func Run(ctx context.Context, log *slog.Logger, handler http.Handler, cfg config.HTTPConfig) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.InfoContext(ctx, "Starting API server", "port", cfg.Port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.InfoContext(ctx, "API server shutting down.")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("API server failed to shutdown: %w", err)
		}
		return nil
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	}
}
