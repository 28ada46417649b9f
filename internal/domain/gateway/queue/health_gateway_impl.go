package queue

import (
	"context"
	"strconv"
	"time"

	"surf-api/internal/domain/model"
)

// QueueResolver resolves a queue name to its URL
type QueueResolver interface {
	QueueURL(ctx context.Context, queueName string) (string, error)
}

// QueueHealthGateway reports the queue as UP when its URL can be resolved
type QueueHealthGateway struct {
	resolver  QueueResolver
	queueName string
	timeout   time.Duration
}

func NewQueueHealthGateway(resolver QueueResolver, queueName string) *QueueHealthGateway {
	return &QueueHealthGateway{
		resolver:  resolver,
		queueName: queueName,
		timeout:   3 * time.Second,
	}
}

func (gateway *QueueHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, gateway.timeout)
	defer cancel()

	start := time.Now()
	queueURL, err := gateway.resolver.QueueURL(ctx, gateway.queueName)
	details := map[string]string{
		"queue":      gateway.queueName,
		"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	}

	if err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["url"] = queueURL
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
