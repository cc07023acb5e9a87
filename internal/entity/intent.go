package entity

import "time"

// IntentPhase is the saga position of a claim.
type IntentPhase string

const (
	PhaseStarted IntentPhase = "started" // balance read, mint not yet confirmed
	PhaseMinted  IntentPhase = "minted"  // tokens on chain, credits not yet settled
	PhaseSettled IntentPhase = "settled"
	PhaseFailed  IntentPhase = "failed"
)

type ClaimIntent struct {
	ID          string
	Wallet      string
	Amount      int64
	BaseUnits   uint64
	Phase       IntentPhase
	TxSignature string
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
