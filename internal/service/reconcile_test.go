package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

func TestReconcile_SettlesMintedAndReportsStale(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credits := NewMockCreditLedger(ctrl)
	intents := NewMockIntentStore(ctrl)
	metrics := NewMockRecorder(ctrl)

	now := time.Unix(1_700_000_000, 0)
	minted := []entity.ClaimIntent{
		{ID: "m1", Wallet: "w1", Amount: 150, Phase: entity.PhaseMinted, TxSignature: "tx1"},
		{ID: "m2", Wallet: "w2", Amount: 200, Phase: entity.PhaseMinted, TxSignature: "tx2"},
	}
	started := []entity.ClaimIntent{
		{ID: "s-old", Wallet: "w3", Amount: 100, Phase: entity.PhaseStarted, UpdatedAt: now.Add(-time.Hour)},
		{ID: "s-new", Wallet: "w4", Amount: 100, Phase: entity.PhaseStarted, UpdatedAt: now.Add(-time.Minute)},
	}

	intents.EXPECT().ListByPhase(gomock.Any(), entity.PhaseMinted).Return(minted, nil)
	intents.EXPECT().ListByPhase(gomock.Any(), entity.PhaseStarted).Return(started, nil)

	credits.EXPECT().Settle(gomock.Any(), "w1", int64(150), "claim", "m1").Return(entity.SettlementResult{OK: true}, nil)
	credits.EXPECT().Settle(gomock.Any(), "w2", int64(200), "claim", "m2").
		Return(entity.SettlementResult{}, &LedgerError{Op: "settle", Status: 502, Err: ErrSettlementFailed})
	intents.EXPECT().MarkSettled(gomock.Any(), "m1").Return(nil)

	metrics.EXPECT().ObserveReconcile("settled")
	metrics.EXPECT().ObserveReconcile("pending")
	metrics.EXPECT().ObserveReconcile("stale")

	r := NewReconciler(loggerSilent(), credits, intents, metrics, 10*time.Minute)
	r.now = func() time.Time { return now }

	rep, err := r.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile() unexpected error: %v", err)
	}
	if len(rep.Settled) != 1 || rep.Settled[0] != "m1" {
		t.Fatalf("Settled = %v; want [m1]", rep.Settled)
	}
	if len(rep.Pending) != 1 || rep.Pending[0] != "m2" {
		t.Fatalf("Pending = %v; want [m2]", rep.Pending)
	}
	if len(rep.Stale) != 1 || rep.Stale[0] != "s-old" {
		t.Fatalf("Stale = %v; want [s-old]", rep.Stale)
	}
}

func TestReconcile_ListErrorStops(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	intents := NewMockIntentStore(ctrl)
	boom := errors.New("db closed")
	intents.EXPECT().ListByPhase(gomock.Any(), entity.PhaseMinted).Return(nil, boom)

	r := NewReconciler(loggerSilent(), NewMockCreditLedger(ctrl), intents, nil, time.Minute)
	if _, err := r.Reconcile(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Reconcile() error = %v; want %v", err, boom)
	}
}
