package service

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./service_mock.go -package=service

type ClaimVerifier interface {
	Verify(wallet, hostID, message, signature string) error
}

// ReplayStore remembers keys for ttl. Remember reports false when the key was already known.
type ReplayStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Locker hands out per-wallet exclusive scopes. Acquire fails with ErrClaimInProgress when held.
type Locker interface {
	Acquire(ctx context.Context, wallet string, ttl time.Duration) (release func(), err error)
}

type CreditLedger interface {
	ReadBalance(ctx context.Context, wallet string) (entity.CreditBalance, error)
	Settle(ctx context.Context, wallet string, amount int64, reason, claimID string) (entity.SettlementResult, error)
}

type TokenLedger interface {
	ResolveRecipientAccount(ctx context.Context, wallet string) (string, error)
	Mint(ctx context.Context, account string, baseUnits uint64) (string, error)
}

type IntentStore interface {
	Create(ctx context.Context, in entity.ClaimIntent) error
	AttachTx(ctx context.Context, id, txSignature string) error
	MarkMinted(ctx context.Context, id, txSignature string) error
	MarkSettled(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
	ListByPhase(ctx context.Context, phase entity.IntentPhase) ([]entity.ClaimIntent, error)
}

type Facilitator interface {
	Verify(ctx context.Context, req entity.PaymentVerifyRequest) (string, error)
}

type Recorder interface {
	ObserveClaim(outcome string, d time.Duration)
	AddMinted(amount int64)
	ObservePayment(resourceID, outcome string)
	ObserveReconcile(outcome string)
}
