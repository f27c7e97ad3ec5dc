package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const defaultGuardTTL = 30 * time.Second

// releaseScript deletes the key only while it still carries our token, so an
// expired hold cannot release someone else's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ActionGuard holds one in-flight action per key across BFF replicas.
// Key format: guard:<action key>
type ActionGuard struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var _ ports.ActionGuard = (*ActionGuard)(nil)

// NewActionGuard wraps client. The ttl bounds how long a crashed holder keeps
// a key; zero uses 30s.
func NewActionGuard(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ActionGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &ActionGuard{client: client, ttl: ttl, log: log}
}

func (g *ActionGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, guardKey(key), token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("action guard: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrActionPending)
	}

	return func() {
		// The caller's context may already be done once the action settles.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
		defer cancel()
		if err := releaseScript.Run(ctx, g.client, []string{guardKey(key)}, token).Err(); err != nil {
			g.log.Warn().Err(err).Str("key", key).Msg("action guard release failed")
		}
	}, nil
}

func guardKey(key string) string {
	return "guard:" + key
}
