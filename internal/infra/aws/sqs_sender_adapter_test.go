package aws_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	. "github.com/smartystreets/goconvey/convey"

	"surf-api/internal/domain/gateway/queue"
	infraaws "surf-api/internal/infra/aws"
)

type stubSQSClient struct {
	reject  map[string]bool
	bodies  []string
	queueIn string
}

func (s *stubSQSClient) GetQueueUrl(_ context.Context, params *awssqs.GetQueueUrlInput, _ ...func(*awssqs.Options)) (*awssqs.GetQueueUrlOutput, error) {
	s.queueIn = *params.QueueName
	return &awssqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/000000000000/" + *params.QueueName)}, nil
}

func (s *stubSQSClient) SendMessage(context.Context, *awssqs.SendMessageInput, ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	return &awssqs.SendMessageOutput{}, nil
}

func (s *stubSQSClient) SendMessageBatch(_ context.Context, params *awssqs.SendMessageBatchInput, _ ...func(*awssqs.Options)) (*awssqs.SendMessageBatchOutput, error) {
	out := &awssqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		s.bodies = append(s.bodies, *entry.MessageBody)
		if s.reject[*entry.Id] {
			out.Failed = append(out.Failed, types.BatchResultErrorEntry{Id: entry.Id})
			continue
		}
		out.Successful = append(out.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return out, nil
}

func TestSQSSenderAdapter(t *testing.T) {
	Convey("Given an adapter over an SQS client", t, func() {
		client := &stubSQSClient{reject: map[string]bool{"peniche": true}}
		var sender queue.Sender = infraaws.NewSQSSenderAdapter(client)

		Convey("When a batch of spot scores is sent", func() {
			result, err := sender.SendMessageBatch(context.Background(), "spot-scores", []queue.BatchMessage{
				{MessageID: "hossegor", Body: map[string]float64{"score": 72}},
				{MessageID: "peniche", Body: map[string]float64{"score": 40}},
			})

			Convey("Then the outcome is mapped back to the domain result", func() {
				So(err, ShouldBeNil)
				So(client.queueIn, ShouldEqual, "spot-scores")
				So(result.Successful, ShouldResemble, []string{"hossegor"})
				So(result.Failed, ShouldResemble, []string{"peniche"})
				So(client.bodies, ShouldContain, `{"score":72}`)
			})
		})
	})
}
