package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// PaymentGate decides whether a request carrying an opaque payment proof may pass.
// Without facilitator and receiver it rejects everything.
type PaymentGate struct {
	log            *slog.Logger
	facilitator    Facilitator
	facilitatorURL string
	receiver       string
	metrics        Recorder
}

func NewPaymentGate(log *slog.Logger, facilitatorURL, receiver string, f Facilitator, metrics Recorder) *PaymentGate {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	g := &PaymentGate{
		log:            log,
		facilitator:    f,
		facilitatorURL: facilitatorURL,
		receiver:       receiver,
		metrics:        metrics,
	}
	if !g.Configured() {
		log.Warn("payment gate not configured; all gated routes will answer 402",
			"facilitator_set", facilitatorURL != "", "receiver_set", receiver != "")
	}
	return g
}

func (g *PaymentGate) Configured() bool {
	return g.facilitatorURL != "" && g.receiver != "" && g.facilitator != nil
}

func (g *PaymentGate) Requirement(resourceID string, price entity.Price) entity.PaymentRequired {
	return entity.PaymentRequired{
		Version: entity.PaymentVersion,
		PaymentRequirements: []entity.PaymentRequirement{{
			Scheme:      entity.SchemeFacilitator,
			Facilitator: g.facilitatorURL,
			Receiver:    g.receiver,
			Amount:      price,
			ResourceID:  resourceID,
		}},
	}
}

// Admit verifies proof with the facilitator and returns its receipt (possibly empty).
func (g *PaymentGate) Admit(ctx context.Context, resourceID, proof string) (string, error) {
	receipt, err := g.admit(ctx, resourceID, proof)
	g.metrics.ObservePayment(resourceID, paymentOutcome(err))
	return receipt, err
}

func (g *PaymentGate) admit(ctx context.Context, resourceID, proof string) (string, error) {
	if !g.Configured() {
		return "", ErrPaymentNotConfigured
	}
	if proof == "" {
		return "", ErrPaymentRequired
	}
	receipt, err := g.facilitator.Verify(ctx, entity.PaymentVerifyRequest{
		XPayment:   proof,
		Receiver:   g.receiver,
		ResourceID: resourceID,
	})
	if err != nil {
		g.log.Warn("payment rejected", "resource", resourceID, "err", err)
		return "", err
	}
	return receipt, nil
}

func paymentOutcome(err error) string {
	switch {
	case err == nil:
		return "admitted"
	case errors.Is(err, ErrPaymentRequired), errors.Is(err, ErrPaymentNotConfigured):
		return "required"
	case errors.Is(err, ErrPaymentVerifyFailed):
		return "rejected"
	default:
		return "error"
	}
}
