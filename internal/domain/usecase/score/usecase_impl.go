package score

import (
	"context"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/scoring"
	"surf-api/pkg/metrics"
)

// SourceAPI labels scores requested through POST /calculate-score
const SourceAPI = "api"

type scoreUseCase struct {
	scorer scoring.Scorer
	source string
}

func NewScoreUseCase(scorer scoring.Scorer, source string) UseCase {
	return &scoreUseCase{scorer: scorer, source: source}
}

func (uc *scoreUseCase) CalculateScore(ctx context.Context, req entity.ScoreRequest) (float64, error) {
	value, err := uc.scorer.Score(ctx, req)
	metrics.RecordScore(uc.source, value, err)
	if err != nil {
		return 0, err
	}
	return value, nil
}
