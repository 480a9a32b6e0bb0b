package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisLocker runs against the server at REDIS_ADDR.
func TestRedisLocker(t *testing.T) {
	_, err := NewRedisLocker(nil, time.Second)
	assert.Error(t, err)

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	locker, err := NewRedisLocker(client, time.Second)
	require.NoError(t, err)
	key := "test:lock:" + uuid.NewString()

	unlock, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, key)
	assert.Error(t, err, "held key cannot be taken twice")

	unlock()
	again, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)
	again()
}
