package service

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// Ed25519Verifier checks detached wallet signatures over claim messages.
type Ed25519Verifier struct{}

func NewEd25519Verifier() *Ed25519Verifier { return &Ed25519Verifier{} }

func (v *Ed25519Verifier) Verify(wallet, hostID, message, signature string) error {
	req := entity.ClaimRequest{Wallet: wallet, HostID: hostID}
	if !strings.HasPrefix(message, req.ExpectedPrefix()) {
		return ErrBadMessageShape
	}

	raw, err := base58.Decode(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignatureEncoding, err)
	}
	if len(raw) != ed25519.SignatureSize {
		return fmt.Errorf("%w: %d bytes", ErrBadSignatureEncoding, len(raw))
	}

	pk, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWallet, err)
	}

	var sig solana.Signature
	copy(sig[:], raw)
	if !sig.Verify(pk, []byte(message)) {
		return ErrSignatureMismatch
	}
	return nil
}
