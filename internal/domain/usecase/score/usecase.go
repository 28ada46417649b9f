package score

import (
	"context"

	"surf-api/internal/domain/entity"
)

type UseCase interface {
	// CalculateScore returns the surf score for the given measurements
	CalculateScore(ctx context.Context, req entity.ScoreRequest) (float64, error)
}
