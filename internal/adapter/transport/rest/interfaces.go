package rest

import (
	"context"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./rest_mock.go -package=rest

type Claimer interface {
	Claim(ctx context.Context, req entity.ClaimRequest) (entity.ClaimResult, error)
}

type BalanceReader interface {
	ReadBalance(ctx context.Context, wallet string) (entity.CreditBalance, error)
}

type PaymentGate interface {
	Admit(ctx context.Context, resourceID, proof string) (string, error)
	Requirement(resourceID string, price entity.Price) entity.PaymentRequired
}
