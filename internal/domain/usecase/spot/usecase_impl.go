package spot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/gateway/api"
	"surf-api/internal/domain/gateway/queue"
	"surf-api/internal/domain/model"
	"surf-api/internal/domain/usecase/score"
	"surf-api/pkg/log"
	"surf-api/pkg/metrics"
	"surf-api/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SourceSpotWatch labels scores computed by the spot watch
const SourceSpotWatch = "spot-watch"

const maxConcurrentSpots = 4

type spotUseCase struct {
	spots             []entity.Spot
	queueName         string
	conditionsGateway api.ConditionsGateway
	scoreUseCase      score.UseCase
	queueSender       queue.Sender
	now               func() time.Time
}

func NewSpotUseCase(spots []entity.Spot, queueName string, conditionsGateway api.ConditionsGateway, scoreUseCase score.UseCase, queueSender queue.Sender) UseCase {
	return &spotUseCase{
		spots:             spots,
		queueName:         queueName,
		conditionsGateway: conditionsGateway,
		scoreUseCase:      scoreUseCase,
		queueSender:       queueSender,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (uc *spotUseCase) ScoreSpot(ctx context.Context, runID string, spot entity.Spot) (*entity.SpotScore, error) {
	conditions, err := uc.conditionsGateway.FetchConditions(ctx, spot.Latitude, spot.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetch conditions: %w", err)
	}

	value, err := uc.scoreUseCase.CalculateScore(ctx, conditions.ScoreRequest())
	if err != nil {
		return nil, fmt.Errorf("calculate score: %w", err)
	}

	return &entity.SpotScore{
		ID:           uuid.NewString(),
		RunID:        runID,
		Spot:         spot,
		Conditions:   *conditions,
		Score:        value,
		CalculatedAt: uc.now(),
	}, nil
}

// ScoreAllSpots scores the spots concurrently. A spot that fails is reported in the
// result and does not stop the run; only a queue that cannot be reached fails it.
func (uc *spotUseCase) ScoreAllSpots(ctx context.Context, runID string) (*model.SpotWatchResult, error) {
	log.Info(msg.GetMessage("spot-watch.run-start", runID), zap.String("run_id", runID))

	scores, failed := uc.scoreSpots(ctx, runID)
	result := &model.SpotWatchResult{
		RunID:       runID,
		Scores:      scores,
		Failed:      failed,
		Unpublished: []string{},
	}

	err := uc.publish(ctx, result)
	metrics.RecordSpotWatchRun(len(scores), len(failed), err)
	if err != nil {
		log.Error(msg.GetMessage("spot-watch.publish-failed", runID, err.Error()), zap.String("run_id", runID), zap.Error(err))
		return result, err
	}

	log.Info(msg.GetMessage("spot-watch.run-end", runID, len(scores), len(failed)),
		zap.String("run_id", runID),
		zap.Int("scored", len(scores)),
		zap.Int("failed", len(failed)),
		zap.Int("unpublished", len(result.Unpublished)))
	return result, nil
}

func (uc *spotUseCase) scoreSpots(ctx context.Context, runID string) ([]entity.SpotScore, map[string]string) {
	scored := make([]*entity.SpotScore, len(uc.spots))
	errs := make([]error, len(uc.spots))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentSpots)
	for i, spot := range uc.spots {
		wg.Add(1)
		go func(i int, spot entity.Spot) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			scored[i], errs[i] = uc.ScoreSpot(ctx, runID, spot)
		}(i, spot)
	}
	wg.Wait()

	scores := make([]entity.SpotScore, 0, len(uc.spots))
	failed := make(map[string]string)
	for i, spot := range uc.spots {
		if errs[i] != nil {
			log.Warn(msg.GetMessage("spot-watch.spot-failed", spot.Name, errs[i].Error()),
				zap.String("run_id", runID),
				zap.String("spot", spot.Name),
				zap.Error(errs[i]))
			failed[spot.Name] = errs[i].Error()
			continue
		}
		scores = append(scores, *scored[i])
	}
	return scores, failed
}

func (uc *spotUseCase) publish(ctx context.Context, result *model.SpotWatchResult) error {
	if len(result.Scores) == 0 {
		return nil
	}

	messages := make([]queue.BatchMessage, len(result.Scores))
	for i, s := range result.Scores {
		messages[i] = queue.BatchMessage{MessageID: s.ID, Body: s}
	}

	batch, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
	if err != nil {
		return err
	}
	result.Unpublished = append(result.Unpublished, batch.Failed...)
	return nil
}
