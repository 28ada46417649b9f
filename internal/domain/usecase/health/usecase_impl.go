package health

import (
	"context"

	"surf-api/internal/domain/gateway/cache"
	"surf-api/internal/domain/gateway/queue"
	"surf-api/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

// NewHealthUseCase aggregates component health. A nil gateway marks a disabled
// component, reported as UNKNOWN and ignored by the overall status.
func NewHealthUseCase(cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := model.DisabledComponent()
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}

	queueHealth := model.DisabledComponent()
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health(ctx)
	}

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown || queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
		Queue:  queueHealth,
	}
}
