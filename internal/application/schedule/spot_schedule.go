package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"surf-api/internal/domain/usecase/spot"
	"surf-api/pkg/log"
	"surf-api/pkg/msg"
)

const spotWatchJob = "spot-watch"

// SpotScheduler runs the spot watch on a cron expression
type SpotScheduler struct {
	scheduler      gocron.Scheduler
	useCase        spot.UseCase
	cronExpression string
	spotCount      int
}

// NewSpotScheduler creates the scheduler. A nil locker runs the job on every instance.
func NewSpotScheduler(useCase spot.UseCase, cronExpression string, spotCount int, locker gocron.Locker) (*SpotScheduler, error) {
	options := []gocron.SchedulerOption{gocron.WithLocation(time.UTC)}
	if locker != nil {
		options = append(options, gocron.WithDistributedLocker(locker))
	}

	scheduler, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create spot watch scheduler: %w", err)
	}

	return &SpotScheduler{
		scheduler:      scheduler,
		useCase:        useCase,
		cronExpression: cronExpression,
		spotCount:      spotCount,
	}, nil
}

// InitSpotScheduleTasks registers the spot watch job and starts the scheduler
func (s *SpotScheduler) InitSpotScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cronExpression, false),
		gocron.NewTask(s.ExecuteScheduledTask),
		gocron.WithName(spotWatchJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule spot watch with cron %q: %w", s.cronExpression, err)
	}

	s.scheduler.Start()
	log.Info(msg.GetMessage("spot-watch.started", s.cronExpression, s.spotCount),
		zap.String("cron", s.cronExpression),
		zap.Int("spots", s.spotCount))
	return nil
}

// ExecuteScheduledTask runs one spot watch pass under a fresh run ID
func (s *SpotScheduler) ExecuteScheduledTask(ctx context.Context) {
	runID := uuid.NewString()
	if _, err := s.useCase.ScoreAllSpots(ctx, runID); err != nil {
		log.Error("Spot watch run failed", zap.String("run_id", runID), zap.Error(err))
	}
}

// Stop waits for running jobs and shuts the scheduler down
func (s *SpotScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
