package app

import (
	"context"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=./app_mock.go -package=app

type Runner interface {
	Run(ctx context.Context) error
}

type Reconciler interface {
	Reconcile(ctx context.Context) (service.ReconcileReport, error)
}
