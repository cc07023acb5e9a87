package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

func silentLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestAppRun_ReconcilesThenServes_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)
	rc := NewMockReconciler(ctrl)

	var gotCtx context.Context
	gomock.InOrder(
		rc.EXPECT().Reconcile(gomock.Any()).Return(service.ReconcileReport{Settled: []string{"i-1"}}, nil),
		mr.EXPECT().
			Run(gomock.Any()).
			DoAndReturn(func(ctx context.Context) error {
				gotCtx = ctx

				// the context must not be canceled before shutdown
				select {
				case <-ctx.Done():
					t.Fatalf("ctx was canceled prematurely")
				default:
				}
				return nil
			}),
	)

	a := New(silentLog(), mr, rc)

	if err := a.Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if gotCtx == nil {
		t.Fatalf("Runner.Run received nil ctx")
	}
}

func TestAppRun_ReconcileFailureDoesNotBlockServing_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)
	rc := NewMockReconciler(ctrl)

	rc.EXPECT().Reconcile(gomock.Any()).Return(service.ReconcileReport{}, errors.New("intent db locked"))
	mr.EXPECT().Run(gomock.Any()).Return(nil)

	if err := New(silentLog(), mr, rc).Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
}

func TestAppRun_NilReconcilerSkipped_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)
	mr.EXPECT().Run(gomock.Any()).Return(nil)

	if err := New(silentLog(), mr, nil).Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
}

func TestAppRun_PropagatesError_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any()).
		Return(wantErr)

	a := New(silentLog(), mr, nil)

	err := a.Run()
	if err == nil {
		t.Fatalf("Run() expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v; want %v", err, wantErr)
	}
}

func TestAppRun_CancelsOnSignal_GracefulExit_GoMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})

	a := New(silentLog(), mr, nil)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("sending SIGINT failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() returned error on graceful cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after SIGINT")
	}
}
