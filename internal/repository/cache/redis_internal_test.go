package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-logistics-service/internal/config"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(&config.RedisConfig{Host: "redis", Port: 6380, Password: "secret", DB: 2})

	assert.Equal(t, "redis:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestRedis_HealthWrapsPingError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	r := NewRedisForTest(client, nil)
	t.Cleanup(func() { _ = r.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := r.Health(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}
