package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Redis mirrors slices into Redis keys as JSON values.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed Mirror. Keys are written as
// "<prefix>:<slice>". It pings the server so an unreachable Redis is caught
// at startup rather than on the first write.
func NewRedis(ctx context.Context, addr, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &Redis{client: client, prefix: prefix}, nil
}

func (m *Redis) key(slice string) string {
	return m.prefix + ":" + slice
}

func (m *Redis) Load(ctx context.Context, slice string, dest any) bool {
	raw, err := m.client.Get(ctx, m.key(slice)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Failed to read slice from redis", "slice", slice, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Corrupt persisted data is treated as absent.
		slog.Warn("Discarding corrupt persisted slice", "slice", slice, "err", err)
		return false
	}
	return true
}

func (m *Redis) Save(ctx context.Context, slice string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal slice %s: %w", slice, err)
	}
	if err := m.client.Set(ctx, m.key(slice), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slice %s: %w", slice, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (m *Redis) Close() error {
	return m.client.Close()
}
