// Package memstore is the single-instance fallback for replay markers and wallet locks.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

type ReplayStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewReplayStore() *ReplayStore {
	return &ReplayStore{seen: make(map[string]time.Time), now: time.Now}
}

func (s *ReplayStore) Seen(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.seen[key]
	return ok && s.now().Before(exp), nil
}

func (s *ReplayStore) Remember(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.seen[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)
	s.sweep(now)
	return true, nil
}

// sweep drops expired markers; callers hold mu.
func (s *ReplayStore) sweep(now time.Time) {
	for k, exp := range s.seen {
		if !now.Before(exp) {
			delete(s.seen, k)
		}
	}
}

// Locker ignores ttl: a process-local lock cannot outlive its holder.
type Locker struct {
	mu   sync.Mutex
	held map[string]uint64
	seq  uint64
}

func NewLocker() *Locker {
	return &Locker{held: make(map[string]uint64)}
}

func (l *Locker) Acquire(_ context.Context, wallet string, _ time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[wallet]; ok {
		return nil, service.ErrClaimInProgress
	}
	l.seq++
	token := l.seq
	l.held[wallet] = token

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if l.held[wallet] == token {
				delete(l.held, wallet)
			}
		})
	}, nil
}
