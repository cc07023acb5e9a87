package service

import (
	"errors"
	"fmt"
)

// Verifier reasons.
var (
	ErrBadMessageShape      = errors.New("claim message does not match template")
	ErrBadSignatureEncoding = errors.New("signature is not valid base58 ed25519")
	ErrInvalidWallet        = errors.New("wallet is not a valid public key")
	ErrSignatureMismatch    = errors.New("signature does not match wallet")
)

// Claim input and flow errors.
var (
	ErrWalletRequired         = errors.New("wallet required")
	ErrClaimSignatureRequired = errors.New("hostId, msg and sig required")
	ErrClaimExpired           = errors.New("claim timestamp outside accepted window")
	ErrClaimReplayed          = errors.New("claim message already used")
	ErrClaimInProgress        = errors.New("another claim for this wallet is in progress")
	ErrMintNotApplied         = errors.New("mint transaction did not take effect")
	ErrAmountOverflow         = errors.New("amount overflows base units")
)

// Upstream errors.
var (
	ErrLedgerUnavailable      = errors.New("credit ledger unavailable")
	ErrSettlementFailed       = errors.New("credit settlement failed")
	ErrPaymentVerifyFailed    = errors.New("payment verification failed")
	ErrFacilitatorUnavailable = errors.New("payment facilitator unavailable")
	ErrPaymentNotConfigured   = errors.New("payment gate not configured")
	ErrPaymentRequired        = errors.New("payment proof required")
)

// LedgerError carries the coordinator's answer for diagnostics.
type LedgerError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *LedgerError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *LedgerError) Unwrap() error { return e.Err }

// Detail is the text surfaced to callers after the error tag.
func (e *LedgerError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Status != 0 {
		return fmt.Sprintf("status %d", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Op
}

type InsufficientCreditsError struct {
	Total int64
	Min   int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("not enough credits: %d < %d", e.Total, e.Min)
}

// SettleFailedError means tokens were minted but credits were not decremented.
type SettleFailedError struct {
	IntentID    string
	TxSignature string
	Err         error
}

func (e *SettleFailedError) Error() string {
	return fmt.Sprintf("settle after mint %s: %v", e.TxSignature, e.Err)
}

func (e *SettleFailedError) Unwrap() error { return e.Err }

// PaymentError carries the facilitator's rejection body.
type PaymentError struct {
	Status int
	Detail string
	Err    error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.Err, e.Status, e.Detail)
}

func (e *PaymentError) Unwrap() error { return e.Err }
