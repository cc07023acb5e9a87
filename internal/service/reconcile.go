package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

type ReconcileReport struct {
	Settled []string `json:"settled"` // minted intents whose settlement went through now
	Pending []string `json:"pending"` // minted intents still not settled
	Stale   []string `json:"stale"`   // started intents with unknown mint outcome
}

// Reconciler retries settlement for minted-but-unsettled claims. It never mints.
type Reconciler struct {
	log        *slog.Logger
	credits    CreditLedger
	intents    IntentStore
	metrics    Recorder
	staleAfter time.Duration
	now        func() time.Time
}

func NewReconciler(log *slog.Logger, credits CreditLedger, intents IntentStore, metrics Recorder, staleAfter time.Duration) *Reconciler {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &Reconciler{
		log:        log,
		credits:    credits,
		intents:    intents,
		metrics:    metrics,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context) (ReconcileReport, error) {
	var rep ReconcileReport

	minted, err := r.intents.ListByPhase(ctx, entity.PhaseMinted)
	if err != nil {
		return rep, fmt.Errorf("list minted intents: %w", err)
	}
	for _, in := range minted {
		log := r.log.With("intent", in.ID, "wallet", in.Wallet, "amount", in.Amount, "tx", in.TxSignature)
		res, err := r.credits.Settle(ctx, in.Wallet, in.Amount, settleReason, in.ID)
		if err != nil {
			log.Error("reconcile settle failed", "err", err)
			rep.Pending = append(rep.Pending, in.ID)
			r.metrics.ObserveReconcile("pending")
			continue
		}
		if err := r.intents.MarkSettled(ctx, in.ID); err != nil {
			return rep, fmt.Errorf("mark intent %s settled: %w", in.ID, err)
		}
		log.Info("reconciled minted claim", "remaining", res.Total)
		rep.Settled = append(rep.Settled, in.ID)
		r.metrics.ObserveReconcile("settled")
	}

	started, err := r.intents.ListByPhase(ctx, entity.PhaseStarted)
	if err != nil {
		return rep, fmt.Errorf("list started intents: %w", err)
	}
	cutoff := r.now().Add(-r.staleAfter)
	for _, in := range started {
		if in.UpdatedAt.After(cutoff) {
			continue
		}
		r.log.Warn("claim intent stuck before mint confirmation; check chain manually",
			"intent", in.ID, "wallet", in.Wallet, "amount", in.Amount, "tx", in.TxSignature, "since", in.UpdatedAt)
		rep.Stale = append(rep.Stale, in.ID)
		r.metrics.ObserveReconcile("stale")
	}

	r.log.Info("reconcile finished",
		"settled", len(rep.Settled), "pending", len(rep.Pending), "stale", len(rep.Stale))
	return rep, nil
}
