package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start launches the HTTP server and returns a channel closed once a
// termination signal arrives or the app context is cancelled.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		slog.Info("portfolio listening", "address", a.httpServer.Addr, "mail_workers", a.pool.Workers())

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		defer close(done)

		ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		<-ctx.Done()
		slog.Info("shutdown requested", "because", context.Cause(ctx))
	}()

	return done
}

// Serve runs the HTTP server on l. Tests use it with an ephemeral port.
func (a *App) Serve(l net.Listener) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)
		errChan <- a.httpServer.Serve(l)
	}()

	return errChan
}

// Stop drains HTTP traffic, closes the mail pool and releases resources.
//
// Queued contact emails fail with a pool-closed error; sends already talking
// to the relay are left to finish on their own.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	//nolint:errcheck // always nil
	a.pool.Close()
	if n := a.pool.InFlight(); n > 0 {
		slog.WarnContext(ctx, "contact emails still sending at shutdown", "in_flight", n)
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
