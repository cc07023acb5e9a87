package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

const settleReason = "claim"

type ClaimConfig struct {
	MinClaim int64
	Decimals uint8
	LockTTL  time.Duration
}

type ClaimDeps struct {
	Auth    *Authenticator
	Credits CreditLedger
	Tokens  TokenLedger
	Intents IntentStore
	Locks   Locker
	Metrics Recorder
}

// Orchestrator runs one claim through verify, balance check, mint and settle.
// Nothing after the mint is rolled back; a failed settle is surfaced as SettleFailedError.
type Orchestrator struct {
	log     *slog.Logger
	cfg     ClaimConfig
	auth    *Authenticator
	credits CreditLedger
	tokens  TokenLedger
	intents IntentStore
	locks   Locker
	metrics Recorder
	now     func() time.Time
	newID   func() string
}

func NewOrchestrator(log *slog.Logger, cfg ClaimConfig, deps ClaimDeps) *Orchestrator {
	o := &Orchestrator{
		log:     log,
		cfg:     cfg,
		auth:    deps.Auth,
		credits: deps.Credits,
		tokens:  deps.Tokens,
		intents: deps.Intents,
		locks:   deps.Locks,
		metrics: deps.Metrics,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	if o.intents == nil {
		o.intents = NopIntents{}
	}
	if o.metrics == nil {
		o.metrics = NopRecorder{}
	}
	return o
}

func (o *Orchestrator) Claim(ctx context.Context, req entity.ClaimRequest) (entity.ClaimResult, error) {
	start := o.now()
	res, err := o.claim(ctx, req)
	o.metrics.ObserveClaim(ClaimOutcome(err), o.now().Sub(start))
	return res, err
}

func (o *Orchestrator) claim(ctx context.Context, req entity.ClaimRequest) (entity.ClaimResult, error) {
	mode, err := o.auth.Authenticate(ctx, req)
	if err != nil {
		return entity.ClaimResult{}, err
	}

	if o.locks != nil {
		release, err := o.locks.Acquire(ctx, req.Wallet, o.cfg.LockTTL)
		if err != nil {
			return entity.ClaimResult{}, err
		}
		defer release()
	}

	balance, err := o.credits.ReadBalance(ctx, req.Wallet)
	if err != nil {
		return entity.ClaimResult{}, err
	}
	total := balance.Total
	if total < o.cfg.MinClaim {
		return entity.ClaimResult{}, &InsufficientCreditsError{Total: total, Min: o.cfg.MinClaim}
	}
	baseUnits, err := ScaleToBaseUnits(total, o.cfg.Decimals)
	if err != nil {
		return entity.ClaimResult{}, err
	}
	// Every earlier failure leaves the signed message reusable for a retry.
	if err := o.auth.Consume(ctx, req); err != nil {
		return entity.ClaimResult{}, err
	}

	// From here on the caller going away must not interrupt mint or settle.
	ctx = context.WithoutCancel(ctx)
	log := o.log.With("wallet", req.Wallet, "amount", total, "mode", mode.String())

	intent := entity.ClaimIntent{
		ID:        o.newID(),
		Wallet:    req.Wallet,
		Amount:    total,
		BaseUnits: baseUnits,
		Phase:     entity.PhaseStarted,
		CreatedAt: o.now(),
	}
	if err := o.intents.Create(ctx, intent); err != nil {
		return entity.ClaimResult{}, fmt.Errorf("record claim intent: %w", err)
	}
	log = log.With("intent", intent.ID)

	account, err := o.tokens.ResolveRecipientAccount(ctx, req.Wallet)
	if err != nil {
		o.fail(ctx, log, intent.ID, err)
		return entity.ClaimResult{}, fmt.Errorf("resolve recipient account: %w", err)
	}

	tx, err := o.tokens.Mint(ctx, account, baseUnits)
	if err != nil {
		switch {
		case errors.Is(err, ErrMintNotApplied):
			o.fail(ctx, log, intent.ID, err)
		case tx != "":
			if aerr := o.intents.AttachTx(ctx, intent.ID, tx); aerr != nil {
				log.Error("attach tx to intent", "tx", tx, "err", aerr)
			}
			log.Error("mint sent but not confirmed; intent left for review", "account", account, "tx", tx, "err", err)
		default:
			log.Error("mint outcome unknown; intent left for review", "account", account, "err", err)
		}
		return entity.ClaimResult{}, fmt.Errorf("mint: %w", err)
	}
	log = log.With("tx", tx)
	o.metrics.AddMinted(total)
	if err := o.intents.MarkMinted(ctx, intent.ID, tx); err != nil {
		log.Error("mark intent minted", "err", err)
	}

	settled, err := o.credits.Settle(ctx, req.Wallet, total, settleReason, intent.ID)
	if err != nil {
		log.Error("tokens minted but credits not settled; reconcile required", "err", err)
		return entity.ClaimResult{}, &SettleFailedError{IntentID: intent.ID, TxSignature: tx, Err: err}
	}
	if err := o.intents.MarkSettled(ctx, intent.ID); err != nil {
		log.Error("mark intent settled", "err", err)
	}
	log.Info("claim settled", "remaining", settled.Total)

	return entity.ClaimResult{
		Mode:      mode,
		IntentID:  intent.ID,
		Receipt:   entity.MintReceipt{TransactionSignature: tx, AmountMinted: total},
		Remaining: settled.Total,
	}, nil
}

func (o *Orchestrator) fail(ctx context.Context, log *slog.Logger, id string, cause error) {
	if err := o.intents.MarkFailed(ctx, id, cause.Error()); err != nil {
		log.Error("mark intent failed", "err", err)
	}
}

// ScaleToBaseUnits converts whole tokens to the mint's smallest unit.
func ScaleToBaseUnits(amount int64, decimals uint8) (uint64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", ErrAmountOverflow, amount)
	}
	units := uint64(amount)
	for i := uint8(0); i < decimals; i++ {
		if units > math.MaxUint64/10 {
			return 0, fmt.Errorf("%w: %d with %d decimals", ErrAmountOverflow, amount, decimals)
		}
		units *= 10
	}
	return units, nil
}

// ClaimOutcome is a low-cardinality label for metrics.
func ClaimOutcome(err error) string {
	var (
		insufficient *InsufficientCreditsError
		settle       *SettleFailedError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &settle):
		return "settle_failed"
	case errors.As(err, &insufficient):
		return "insufficient"
	case errors.Is(err, ErrLedgerUnavailable):
		return "ledger_unavailable"
	case errors.Is(err, ErrClaimInProgress), errors.Is(err, ErrClaimReplayed):
		return "conflict"
	case errors.Is(err, ErrBadSignatureEncoding), errors.Is(err, ErrSignatureMismatch):
		return "unauthorized"
	case errors.Is(err, ErrWalletRequired), errors.Is(err, ErrClaimSignatureRequired),
		errors.Is(err, ErrBadMessageShape), errors.Is(err, ErrInvalidWallet),
		errors.Is(err, ErrClaimExpired):
		return "bad_request"
	default:
		return "internal"
	}
}
