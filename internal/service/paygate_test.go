package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

func TestPaymentGate_Admit(t *testing.T) {
	t.Parallel()

	rejected := &PaymentError{Status: 402, Detail: "nope", Err: ErrPaymentVerifyFailed}

	cases := []struct {
		name        string
		facilitator string
		receiver    string
		proof       string
		verifyRet   string
		verifyErr   error
		verifyCalls int
		outcome     string
		want        error
	}{
		{"unconfigured", "", "", "proof", "", nil, 0, "required", ErrPaymentNotConfigured},
		{"missing_receiver", "https://f", "", "proof", "", nil, 0, "required", ErrPaymentNotConfigured},
		{"no_proof", "https://f", "r", "", "", nil, 0, "required", ErrPaymentRequired},
		{"rejected", "https://f", "r", "proof", "", rejected, 1, "rejected", ErrPaymentVerifyFailed},
		{"facilitator_down", "https://f", "r", "proof", "", ErrFacilitatorUnavailable, 1, "error", ErrFacilitatorUnavailable},
		{"admitted", "https://f", "r", "proof", "receipt", nil, 1, "admitted", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := NewMockFacilitator(ctrl)
			rec := NewMockRecorder(ctrl)

			f.EXPECT().
				Verify(gomock.Any(), entity.PaymentVerifyRequest{XPayment: tc.proof, Receiver: tc.receiver, ResourceID: "res"}).
				Return(tc.verifyRet, tc.verifyErr).
				Times(tc.verifyCalls)
			rec.EXPECT().ObservePayment("res", tc.outcome)

			g := NewPaymentGate(loggerSilent(), tc.facilitator, tc.receiver, f, rec)
			got, err := g.Admit(context.Background(), "res", tc.proof)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Admit() error = %v; want %v", err, tc.want)
			}
			if got != tc.verifyRet {
				t.Fatalf("Admit() receipt = %q; want %q", got, tc.verifyRet)
			}
		})
	}
}

func TestPaymentGate_Requirement(t *testing.T) {
	t.Parallel()

	g := NewPaymentGate(loggerSilent(), "https://f", "r", nil, nil)
	req := g.Requirement("credits-read", entity.Price{Currency: "USD", Value: "0.01"})

	if req.Version != "x402-1" {
		t.Fatalf("Version = %q; want x402-1", req.Version)
	}
	if len(req.PaymentRequirements) != 1 {
		t.Fatalf("len(PaymentRequirements) = %d; want 1", len(req.PaymentRequirements))
	}
	want := entity.PaymentRequirement{
		Scheme:      "facilitator",
		Facilitator: "https://f",
		Receiver:    "r",
		Amount:      entity.Price{Currency: "USD", Value: "0.01"},
		ResourceID:  "credits-read",
	}
	if req.PaymentRequirements[0] != want {
		t.Fatalf("requirement = %+v; want %+v", req.PaymentRequirements[0], want)
	}
	if g.Configured() {
		t.Fatalf("gate without facilitator client must not be configured")
	}
}
