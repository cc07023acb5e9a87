package app

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
)

type App struct {
	log        *slog.Logger
	srv        Runner
	reconciler Reconciler
}

// New wires the server with an optional startup reconciler (nil skips it).
func New(log *slog.Logger, srv Runner, reconciler Reconciler) *App {
	return &App{log: log, srv: srv, reconciler: reconciler}
}

// Run reconciles leftover claim intents once, then serves until SIGINT or SIGTERM.
// A failed reconcile is logged and does not block serving.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.reconciler != nil {
		if _, err := a.reconciler.Reconcile(ctx); err != nil {
			a.log.Warn("startup reconcile failed", "err", err)
		}
	}
	return a.srv.Run(ctx)
}
