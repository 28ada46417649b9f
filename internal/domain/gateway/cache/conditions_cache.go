package cache

import (
	"context"
	"fmt"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/gateway/api"
	"surf-api/pkg/log"

	"go.uber.org/zap"
)

// CacheName is the redis cache holding conditions; its TTL is app.redis.cache-ttl.conditions
const CacheName = "conditions"

// Store is the key/value cache used by the decorator. *redis.Cache satisfies it.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// cachedConditionsGateway is a read-through cache in front of another ConditionsGateway
type cachedConditionsGateway struct {
	next  api.ConditionsGateway
	store Store
}

// NewCachedConditionsGateway wraps next with a read-through cache. Cache failures are
// logged and never fail the lookup.
func NewCachedConditionsGateway(next api.ConditionsGateway, store Store) api.ConditionsGateway {
	return &cachedConditionsGateway{next: next, store: store}
}

func (g *cachedConditionsGateway) FetchConditions(ctx context.Context, latitude, longitude float64) (*entity.SurfConditions, error) {
	key := coordinateKey(latitude, longitude)

	var cached entity.SurfConditions
	found, err := g.store.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("conditions cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		cached.Latitude, cached.Longitude = latitude, longitude
		return &cached, nil
	}

	conditions, err := g.next.FetchConditions(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	if err := g.store.Set(ctx, key, conditions); err != nil {
		log.Warn("conditions cache write failed", zap.String("key", key), zap.Error(err))
	}
	return conditions, nil
}

// coordinateKey rounds to two decimals, roughly one kilometre
func coordinateKey(latitude, longitude float64) string {
	return fmt.Sprintf("%.2f:%.2f", latitude, longitude)
}
