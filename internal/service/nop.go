package service

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// NopIntents is used when no intent database is configured.
type NopIntents struct{}

func (NopIntents) Create(context.Context, entity.ClaimIntent) error { return nil }
func (NopIntents) AttachTx(context.Context, string, string) error   { return nil }
func (NopIntents) MarkMinted(context.Context, string, string) error { return nil }
func (NopIntents) MarkSettled(context.Context, string) error        { return nil }
func (NopIntents) MarkFailed(context.Context, string, string) error { return nil }
func (NopIntents) ListByPhase(context.Context, entity.IntentPhase) ([]entity.ClaimIntent, error) {
	return nil, nil
}

type NopRecorder struct{}

func (NopRecorder) ObserveClaim(string, time.Duration) {}
func (NopRecorder) AddMinted(int64)                    {}
func (NopRecorder) ObservePayment(string, string)      {}
func (NopRecorder) ObserveReconcile(string)            {}

