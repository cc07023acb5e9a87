package service

import (
	"context"
	"log/slog"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// Authenticator admits a claim either by signature (ModeVerified) or, in
// development only, by wallet alone (ModeBypassed).
type Authenticator struct {
	log      *slog.Logger
	mode     entity.ClaimMode
	verifier ClaimVerifier
	replay   *ReplayGuard
}

func NewVerifiedAuthenticator(log *slog.Logger, v ClaimVerifier, replay *ReplayGuard) *Authenticator {
	return &Authenticator{log: log, mode: entity.ModeVerified, verifier: v, replay: replay}
}

// NewBypassAuthenticator must only be wired when DEV_NO_VERIFY is set explicitly.
func NewBypassAuthenticator(log *slog.Logger) *Authenticator {
	log.Warn("claim signature verification DISABLED; every wallet is accepted without proof",
		"mode", entity.ModeBypassed.String())
	return &Authenticator{log: log, mode: entity.ModeBypassed}
}

func (a *Authenticator) Mode() entity.ClaimMode { return a.mode }

func (a *Authenticator) Authenticate(ctx context.Context, req entity.ClaimRequest) (entity.ClaimMode, error) {
	if req.Wallet == "" {
		return 0, ErrWalletRequired
	}

	switch a.mode {
	case entity.ModeBypassed:
		a.log.Warn("claim admitted without signature", "wallet", req.Wallet)
		return entity.ModeBypassed, nil
	default:
		if req.HostID == "" || req.Message == "" || req.Signature == "" {
			return 0, ErrClaimSignatureRequired
		}
		if err := a.verifier.Verify(req.Wallet, req.HostID, req.Message, req.Signature); err != nil {
			return 0, err
		}
		if err := a.replay.Check(ctx, req); err != nil {
			return 0, err
		}
		return entity.ModeVerified, nil
	}
}

// Consume spends a verified claim's signed message. Bypassed claims carry none.
func (a *Authenticator) Consume(ctx context.Context, req entity.ClaimRequest) error {
	if a.mode != entity.ModeVerified {
		return nil
	}
	return a.replay.Consume(ctx, req)
}
