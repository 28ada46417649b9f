package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig describes an exponential retry policy.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// InitialInterval is the wait before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the wait between retries.
	MaxInterval time.Duration
	// Multiplier grows the interval on each retry.
	Multiplier float64
	// RetryableStatus lists the HTTP statuses worth retrying. Transport errors are always retried.
	RetryableStatus []int
}

// NewBackoffConfig creates a backoff configuration with default values
func NewBackoffConfig(maxRetries int) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      maxRetries,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
		RetryableStatus: []int{
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// interval returns the wait before the given retry, starting at 1
func (b *BackoffConfig) interval(attempt int) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	wait := time.Duration(float64(b.InitialInterval) * math.Pow(multiplier, float64(attempt-1)))
	if b.MaxInterval > 0 && wait > b.MaxInterval {
		return b.MaxInterval
	}
	return wait
}

// shouldRetry reports whether a failed attempt is worth repeating
func (b *BackoffConfig) shouldRetry(ctx context.Context, status int, err error) bool {
	if ctx.Err() != nil || errors.Is(err, errRequestBuild) {
		return false
	}
	if status == 0 {
		return true
	}
	for _, retryable := range b.RetryableStatus {
		if status == retryable {
			return true
		}
	}
	return false
}
