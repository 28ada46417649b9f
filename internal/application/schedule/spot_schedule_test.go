package schedule_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/internal/application/schedule"
	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/model"
)

type countingSpotUseCase struct {
	mu     sync.Mutex
	runIDs []string
}

func (c *countingSpotUseCase) ScoreSpot(context.Context, string, entity.Spot) (*entity.SpotScore, error) {
	return nil, nil
}

func (c *countingSpotUseCase) ScoreAllSpots(_ context.Context, runID string) (*model.SpotWatchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runIDs = append(c.runIDs, runID)
	return &model.SpotWatchResult{RunID: runID}, nil
}

func TestSpotScheduler(t *testing.T) {
	Convey("Given a spot scheduler", t, func() {
		useCase := &countingSpotUseCase{}

		Convey("When the cron expression is valid", func() {
			scheduler, err := schedule.NewSpotScheduler(useCase, "0 */3 * * *", 2, nil)
			So(err, ShouldBeNil)

			err = scheduler.InitSpotScheduleTasks()

			Convey("Then the job is registered and the scheduler stops cleanly", func() {
				So(err, ShouldBeNil)
				So(scheduler.Stop(), ShouldBeNil)
			})
		})

		Convey("When the cron expression is invalid", func() {
			scheduler, err := schedule.NewSpotScheduler(useCase, "every three hours", 2, nil)
			So(err, ShouldBeNil)

			err = scheduler.InitSpotScheduleTasks()

			Convey("Then scheduling fails", func() {
				So(err, ShouldNotBeNil)
				So(scheduler.Stop(), ShouldBeNil)
			})
		})

		Convey("When a run is executed directly", func() {
			scheduler, _ := schedule.NewSpotScheduler(useCase, "0 */3 * * *", 2, nil)
			defer func() { _ = scheduler.Stop() }()
			scheduler.ExecuteScheduledTask(context.Background())
			scheduler.ExecuteScheduledTask(context.Background())

			Convey("Then each run gets its own ID", func() {
				So(len(useCase.runIDs), ShouldEqual, 2)
				So(useCase.runIDs[0], ShouldNotEqual, useCase.runIDs[1])
			})
		})
	})
}
