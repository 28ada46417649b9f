package configs

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"surf-api/internal/domain/entity"
	"surf-api/pkg/resource"
)

// SpotWatchConfig is the app.spot-watch block
type SpotWatchConfig struct {
	Enabled   bool
	Cron      string        `validate:"required"`
	QueueName string        `validate:"required"`
	LockTTL   time.Duration `validate:"gt=0"`
	Spots     []entity.Spot `validate:"required,min=1,dive"`
}

// LoadSpotWatch reads and validates the spot watch properties. A disabled watch is
// returned without validation.
func LoadSpotWatch() (*SpotWatchConfig, error) {
	cfg := &SpotWatchConfig{
		Enabled:   resource.GetBool("app.spot-watch.enabled"),
		Cron:      resource.GetString("app.spot-watch.cron"),
		QueueName: resource.GetString("app.spot-watch.queue-name"),
		LockTTL:   resource.GetDuration("app.spot-watch.lock-ttl"),
	}
	if !cfg.Enabled {
		return cfg, nil
	}

	if err := resource.UnmarshalKey("app.spot-watch.spots", &cfg.Spots); err != nil {
		return nil, fmt.Errorf("invalid app.spot-watch.spots: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid spot watch configuration: %w", err)
	}
	return cfg, nil
}
