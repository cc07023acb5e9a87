package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/coordinator"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/intent"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/metrics"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
	"github.com/dayanaadylkhanova/credit-claim/pkg/config"
	"github.com/dayanaadylkhanova/credit-claim/pkg/logger"
)

const serviceName = "claimd"

// core holds what both serve and reconcile need.
type core struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	credits *coordinator.Client
	intents service.IntentStore
	closers []func() error
}

func setup(ctx context.Context, cmd *cobra.Command) (*core, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	c := &core{
		cfg:     cfg,
		log:     logger.NewJSON(serviceName, logger.LevelFromEnv(cfg.LogLevel)),
		metrics: metrics.New(prometheus.DefaultRegisterer),
		credits: coordinator.NewClient(cfg.CoordURL, cfg.HTTPTimeout),
		intents: service.NopIntents{},
	}

	if cfg.IntentDB != "" {
		store, err := intent.Open(ctx, cfg.IntentDB)
		if err != nil {
			return nil, fmt.Errorf("open intent log: %w", err)
		}
		c.intents = store
		c.closers = append(c.closers, store.Close)
	} else {
		c.log.Warn("INTENT_DB empty; claim intents are not recorded")
	}
	return c, nil
}

func (c *core) reconciler() *service.Reconciler {
	return service.NewReconciler(c.log, c.credits, c.intents, c.metrics, c.cfg.ReconcileStaleAfter)
}

func (c *core) close() {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	if err := errors.Join(errs...); err != nil {
		c.log.Error("shutdown cleanup", "err", err)
	}
}
