package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld is returned when another owner holds the lock.
var ErrLockHeld = errors.New("lock is held by another owner")

const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a new distributed lock under namespace::key
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	if namespace != "" {
		key = namespace + "::" + key
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock acquires the lock once, without retrying
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	if !acquired {
		return fmt.Errorf("%s: %w", l.key, ErrLockHeld)
	}
	return nil
}

// Unlock releases the lock if it is still owned by this instance
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if result == 0 {
		return fmt.Errorf("lock %s was not owned or already expired", l.key)
	}
	return nil
}
