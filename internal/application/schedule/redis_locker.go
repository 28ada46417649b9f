package schedule

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"surf-api/pkg/redis"
)

const lockNamespace = "spot_watch"

// RedisLocker lets gocron run each job on a single instance across the cluster
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// Lock takes the job lock once; gocron skips the run when another instance holds it
func (l *RedisLocker) Lock(ctx context.Context, key string) (gocron.Lock, error) {
	lock := redis.NewLock(l.client, lockNamespace, key, l.ttl)
	if err := lock.TryLock(ctx); err != nil {
		return nil, err
	}
	return lock, nil
}
