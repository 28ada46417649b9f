package cache

import (
	"context"

	"surf-api/internal/domain/model"
	"surf-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// Pinger is satisfied by *redis.Client
type Pinger interface {
	HealthCheck(ctx context.Context) redis.HealthCheck
}

// RedisHealthGateway maps the redis client health check onto the component status
type RedisHealthGateway struct {
	client Pinger
}

func NewRedisHealthGateway(client Pinger) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}
