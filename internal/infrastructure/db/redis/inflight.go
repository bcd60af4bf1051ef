package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// inflightTTL bounds how long an abandoned export can block its successor;
// the export service releases the key explicitly on every normal path.
const inflightTTL = 5 * time.Minute

// InFlightGuard suppresses duplicate long-running downloads via SETNX.
// Key format: console:inflight:<session>:<operation hash>
type InFlightGuard struct {
	client *redis.Client
}

// NewInFlightGuard creates an InFlightGuard wrapping the given Redis client.
func NewInFlightGuard(client *redis.Client) *InFlightGuard {
	return &InFlightGuard{client: client}
}

// Acquire reports whether the caller won the slot for key. false means an
// identical operation is already running.
func (g *InFlightGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", inflightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("inflight acquire: %w", err)
	}
	return ok, nil
}

// Release frees the slot for key.
func (g *InFlightGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.key(key)).Err()
}

func (g *InFlightGuard) key(key string) string {
	return "console:inflight:" + key
}
