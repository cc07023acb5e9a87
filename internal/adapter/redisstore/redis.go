// Package redisstore keeps replay markers and wallet locks in Redis so that several
// instances share them.
package redisstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

const (
	replayPrefix = "claim:seen:"
	lockPrefix   = "claim:lock:"

	releaseTimeout = 2 * time.Second
)

// Compare-and-delete so an expired lock taken over by another claim is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect parses a redis:// URL, applies pool defaults and pings the server.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = 10
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 5 * time.Minute
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

type ReplayStore struct {
	client redis.UniversalClient
}

func NewReplayStore(client redis.UniversalClient) *ReplayStore {
	return &ReplayStore{client: client}
}

func (s *ReplayStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, replayPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (s *ReplayStore) Remember(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, replayPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

type Locker struct {
	log    *slog.Logger
	client redis.UniversalClient
}

func NewLocker(log *slog.Logger, client redis.UniversalClient) *Locker {
	return &Locker{log: log, client: client}
}

func (l *Locker) Acquire(ctx context.Context, wallet string, ttl time.Duration) (func(), error) {
	key := lockPrefix + wallet
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lock %s: %w", wallet, err)
	}
	if !ok {
		return nil, service.ErrClaimInProgress
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn("release wallet lock", "wallet", wallet, "err", err)
		}
	}, nil
}
