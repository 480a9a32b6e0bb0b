// Package lock provides a Redis-backed distributed mutex.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultExpiry = 10 * time.Second
	defaultTries  = 32
)

// RedisLocker hands out redsync mutexes.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
	tries  int
}

var _ i.Locker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker on client. A non-positive expiry uses the default.
func NewRedisLocker(client *redis.Client, expiry time.Duration) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("lock: nil redis client")
	}
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: expiry,
		tries:  defaultTries,
	}, nil
}

// Lock acquires key, retrying until the tries run out or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.locker.NewMutex(key, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquiring %s: %w", key, err)
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
