// Package httpapi serves a read-only JSON view of the park over HTTP.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// DefaultHistoryLimit is used when /history is called without a limit.
const DefaultHistoryLimit = 50

// Reader is the storage the server reads from. It never touches a live
// session model.
type Reader interface {
	LoadRides(ctx context.Context) ([]entities.Ride, error)
	FindRide(ctx context.Context, name string) (*entities.Ride, error)
	ListCommands(ctx context.Context, limit int) ([]entities.CommandEntry, error)
}

// NewRouter builds the chi router with the standard middleware stack.
func NewRouter(reader Reader, logger *slog.Logger) http.Handler {
	h := &handler{reader: reader, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/rides", func(r chi.Router) {
		r.Get("/", h.listRides)
		r.Get("/{name}", h.getRide)
	})
	r.Get("/history", h.listHistory)

	return r
}

// Serve runs the server on addr until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
