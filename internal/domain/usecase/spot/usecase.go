package spot

import (
	"context"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/model"
)

type UseCase interface {
	// ScoreSpot fetches the current conditions at the spot and scores them
	ScoreSpot(ctx context.Context, runID string, spot entity.Spot) (*entity.SpotScore, error)

	// ScoreAllSpots scores every watched spot and publishes the scores to the queue
	ScoreAllSpots(ctx context.Context, runID string) (*model.SpotWatchResult, error)
}
