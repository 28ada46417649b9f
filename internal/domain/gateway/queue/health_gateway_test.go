package queue_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/internal/domain/gateway/queue"
	"surf-api/internal/domain/model"
)

type stubResolver struct {
	err error
}

func (s stubResolver) QueueURL(_ context.Context, queueName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "http://localhost:4566/000000000000/" + queueName, nil
}

func TestQueueHealthGateway(t *testing.T) {
	Convey("Given a queue health gateway", t, func() {
		ctx := context.Background()

		Convey("When the queue resolves", func() {
			health := queue.NewQueueHealthGateway(stubResolver{}, "surf-spot-scores").Health(ctx)

			Convey("Then the queue is UP with its URL", func() {
				So(health.Status, ShouldEqual, model.StatusUp)
				So(health.Details["url"], ShouldEndWith, "/surf-spot-scores")
			})
		})

		Convey("When the queue cannot be resolved", func() {
			health := queue.NewQueueHealthGateway(stubResolver{err: errors.New("AWS.SimpleQueueService.NonExistentQueue")}, "surf-spot-scores").Health(ctx)

			Convey("Then the queue is DOWN with the error", func() {
				So(health.Status, ShouldEqual, model.StatusDown)
				So(health.Details["error"], ShouldContainSubstring, "NonExistentQueue")
			})
		})
	})
}
