package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

func claimAt(ts string) entity.ClaimRequest {
	return entity.ClaimRequest{Wallet: "w", HostID: "h", Message: "CLAIM|h|w|" + ts, Signature: "s"}
}

func TestReplayGuard_Window(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	sec := func(d time.Duration) string { return strconv.FormatInt(now.Add(d).Unix(), 10) }
	milli := func(d time.Duration) string { return strconv.FormatInt(now.Add(d).UnixMilli(), 10) }

	cases := []struct {
		name string
		ts   string
		want error
	}{
		{"fresh_seconds", sec(-time.Minute), nil},
		{"fresh_millis", milli(-time.Minute), nil},
		{"small_future_skew", sec(30 * time.Second), nil},
		{"too_old", sec(-6 * time.Minute), ErrClaimExpired},
		{"too_far_future", sec(2 * time.Minute), ErrClaimExpired},
		{"old_millis", milli(-time.Hour), ErrClaimExpired},
		{"not_a_number", "yesterday", ErrBadMessageShape},
		{"empty", "", ErrBadMessageShape},
		{"negative", "-5", ErrBadMessageShape},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockReplayStore(ctrl)
			if tc.want == nil {
				store.EXPECT().Seen(gomock.Any(), gomock.Any()).Return(false, nil)
			}

			g := NewReplayGuard(store, 5*time.Minute, time.Minute)
			g.now = func() time.Time { return now }

			err := g.Check(context.Background(), claimAt(tc.ts))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Check() error = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestReplayGuard_CheckNeverMarks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockReplayStore(ctrl)
	// Remember is not expected: Check alone must leave the message reusable.
	store.EXPECT().Seen(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	g := NewReplayGuard(store, 5*time.Minute, time.Minute)
	req := claimAt(strconv.FormatInt(time.Now().Unix(), 10))

	for i := 0; i < 2; i++ {
		if err := g.Check(context.Background(), req); err != nil {
			t.Fatalf("Check() #%d unexpected error: %v", i+1, err)
		}
	}
}

func TestReplayGuard_ConsumedMessageRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockReplayStore(ctrl)
	var key string
	gomock.InOrder(
		store.EXPECT().Remember(gomock.Any(), gomock.Any(), 6*time.Minute).
			DoAndReturn(func(_ context.Context, k string, _ time.Duration) (bool, error) {
				key = k
				return true, nil
			}),
		store.EXPECT().Seen(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k string) (bool, error) {
				if k != key {
					t.Fatalf("replay key changed between identical claims")
				}
				return true, nil
			}),
		store.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
	)

	g := NewReplayGuard(store, 5*time.Minute, time.Minute)
	req := claimAt(strconv.FormatInt(time.Now().Unix(), 10))

	if err := g.Consume(context.Background(), req); err != nil {
		t.Fatalf("first Consume() unexpected error: %v", err)
	}
	if err := g.Check(context.Background(), req); !errors.Is(err, ErrClaimReplayed) {
		t.Fatalf("Check() after Consume error = %v; want %v", err, ErrClaimReplayed)
	}
	if err := g.Consume(context.Background(), req); !errors.Is(err, ErrClaimReplayed) {
		t.Fatalf("second Consume() error = %v; want %v", err, ErrClaimReplayed)
	}
}

func TestReplayGuard_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := NewMockReplayStore(ctrl)
	boom := errors.New("redis down")
	store.EXPECT().Seen(gomock.Any(), gomock.Any()).Return(false, boom)
	store.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

	g := NewReplayGuard(store, 5*time.Minute, time.Minute)
	req := claimAt(strconv.FormatInt(time.Now().Unix(), 10))
	if err := g.Check(context.Background(), req); !errors.Is(err, boom) {
		t.Fatalf("Check() error = %v; want %v", err, boom)
	}
	if err := g.Consume(context.Background(), req); !errors.Is(err, boom) {
		t.Fatalf("Consume() error = %v; want %v", err, boom)
	}
}

func TestReplayGuard_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	var nilGuard *ReplayGuard
	if err := nilGuard.Check(context.Background(), claimAt("garbage")); err != nil {
		t.Fatalf("nil guard Check() = %v; want nil", err)
	}
	if err := NewReplayGuard(nil, 0, 0).Check(context.Background(), claimAt("garbage")); err != nil {
		t.Fatalf("zero window Check() = %v; want nil", err)
	}
	if err := nilGuard.Consume(context.Background(), claimAt("garbage")); err != nil {
		t.Fatalf("nil guard Consume() = %v; want nil", err)
	}
}
