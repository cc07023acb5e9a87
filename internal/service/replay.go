package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

const (
	DefaultClaimMaxAge = 5 * time.Minute
	DefaultClockSkew   = time.Minute

	// Timestamps above this are read as Unix milliseconds.
	millisThreshold = 1_000_000_000_000
)

// ReplayGuard enforces freshness of the claim timestamp and single use of each signed message.
// Check only reads; a message is used up by Consume, once the claim is about to mint.
type ReplayGuard struct {
	store  ReplayStore
	maxAge time.Duration
	skew   time.Duration
	now    func() time.Time
}

func NewReplayGuard(store ReplayStore, maxAge, skew time.Duration) *ReplayGuard {
	return &ReplayGuard{store: store, maxAge: maxAge, skew: skew, now: time.Now}
}

func (g *ReplayGuard) Check(ctx context.Context, req entity.ClaimRequest) error {
	if g == nil || g.maxAge <= 0 {
		return nil
	}
	ts, err := claimTimestamp(req)
	if err != nil {
		return err
	}
	now := g.now()
	if ts.Before(now.Add(-g.maxAge)) || ts.After(now.Add(g.skew)) {
		return fmt.Errorf("%w: signed at %s", ErrClaimExpired, ts.UTC().Format(time.RFC3339))
	}

	seen, err := g.store.Seen(ctx, replayKey(req))
	if err != nil {
		return fmt.Errorf("replay store: %w", err)
	}
	if seen {
		return ErrClaimReplayed
	}
	return nil
}

// Consume marks the message used. It fails with ErrClaimReplayed if another claim got there first.
func (g *ReplayGuard) Consume(ctx context.Context, req entity.ClaimRequest) error {
	if g == nil || g.maxAge <= 0 {
		return nil
	}
	fresh, err := g.store.Remember(ctx, replayKey(req), g.maxAge+g.skew)
	if err != nil {
		return fmt.Errorf("replay store: %w", err)
	}
	if !fresh {
		return ErrClaimReplayed
	}
	return nil
}

func claimTimestamp(req entity.ClaimRequest) (time.Time, error) {
	prefix := req.ExpectedPrefix()
	if !strings.HasPrefix(req.Message, prefix) {
		return time.Time{}, ErrBadMessageShape
	}
	raw := req.Message[len(prefix):]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrBadMessageShape, raw)
	}
	if n > millisThreshold {
		return time.UnixMilli(n), nil
	}
	return time.Unix(n, 0), nil
}

func replayKey(req entity.ClaimRequest) string {
	sum := sha256.Sum256([]byte(req.Message + "|" + req.Signature))
	return hex.EncodeToString(sum[:])
}
