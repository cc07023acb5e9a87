package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/facilitator"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/ledger"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/memstore"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/redisstore"
	"github.com/dayanaadylkhanova/credit-claim/internal/adapter/transport/rest"
	"github.com/dayanaadylkhanova/credit-claim/internal/app"
	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the claim HTTP server",
	Long: `Start the HTTP server exposing /claim, the paid /credits/:wallet route,
/healthz and /metrics. Leftover claim intents are reconciled once before serving.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer c.close()
	cfg, log := c.cfg, c.log

	tokens, err := ledger.Dial(log, cfg.RPCURL, cfg.MintAddr, cfg.MintAuthFile, ledger.WithConfirmTimeout(cfg.ConfirmTimeout))
	if err != nil {
		return fmt.Errorf("token ledger: %w", err)
	}
	log.Info("token ledger ready", "rpc", cfg.RPCURL, "mint", cfg.MintAddr, "authority", tokens.Authority().String())

	var (
		replay service.ReplayStore
		locks  service.Locker
	)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		c.closers = append(c.closers, rdb.Close)
		replay = redisstore.NewReplayStore(rdb)
		locks = redisstore.NewLocker(log, rdb)
		log.Info("replay guard and wallet locks backed by redis")
	} else {
		replay = memstore.NewReplayStore()
		locks = memstore.NewLocker()
	}

	var auth *service.Authenticator
	if cfg.DevNoVerify {
		auth = service.NewBypassAuthenticator(log)
	} else {
		guard := service.NewReplayGuard(replay, cfg.ClaimMaxAge, service.DefaultClockSkew)
		auth = service.NewVerifiedAuthenticator(log, service.NewEd25519Verifier(), guard)
	}

	orch := service.NewOrchestrator(log, service.ClaimConfig{
		MinClaim: cfg.MinClaim,
		Decimals: cfg.MintDecimals,
		LockTTL:  cfg.LockTTL,
	}, service.ClaimDeps{
		Auth:    auth,
		Credits: c.credits,
		Tokens:  tokens,
		Intents: c.intents,
		Locks:   locks,
		Metrics: c.metrics,
	})

	var fac service.Facilitator
	if cfg.FacilitatorURL != "" {
		fac = facilitator.NewClient(cfg.FacilitatorURL, cfg.HTTPTimeout)
	}
	gate := service.NewPaymentGate(log, cfg.FacilitatorURL, cfg.Receiver, fac, c.metrics)

	gin.SetMode(gin.ReleaseMode)
	srv := rest.NewServer(log, cfg.ListenAddr(), cfg.ShutdownWait, rest.Deps{
		Claims:    orch,
		Credits:   c.credits,
		Gate:      gate,
		Price:     entity.Price{Currency: cfg.Currency, Value: cfg.Price},
		Metrics:   prometheus.DefaultGatherer,
		RateRPS:   cfg.RateLimitRPS,
		RateBurst: cfg.RateLimitBurst,
	})

	log.Info("claim server starting",
		"addr", cfg.ListenAddr(), "coord", cfg.CoordURL, "min_claim", cfg.MinClaim,
		"mode", auth.Mode().String(), "paywall", gate.Configured())

	var startup app.Reconciler
	if cfg.IntentDB != "" {
		startup = c.reconciler()
	}
	if err := app.New(log, srv, startup).Run(); err != nil {
		log.Error("server stopped with error", "err", err)
		return err
	}
	return nil
}
