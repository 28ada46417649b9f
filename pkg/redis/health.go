package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, c.config.DialTimeout)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	details := map[string]string{
		"address":    c.config.Addr(),
		"latency_ms": strconv.FormatInt(latency.Milliseconds(), 10),
	}

	if stats := c.rdb.PoolStats(); stats != nil {
		details["pool_total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["pool_idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
