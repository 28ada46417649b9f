package aws

import (
	"context"

	"surf-api/internal/domain/gateway/queue"
	"surf-api/pkg/sqs"
)

var _ queue.Sender = (*SQSSenderAdapter)(nil)

// SQSSenderAdapter adapts pkg/sqs.Sender to the domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

// NewSQSSenderAdapter creates a sender over the given SQS client
func NewSQSSenderAdapter(sqsClient sqs.SQSClient) *SQSSenderAdapter {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessageBatch(ctx context.Context, queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	sqsMessages := make([]sqs.BatchMessage, len(messages))
	for i, msg := range messages {
		sqsMessages[i] = sqs.BatchMessage{MessageID: msg.MessageID, Body: msg.Body}
	}

	result, err := adapter.sqsSender.SendMessageBatch(ctx, queueName, sqsMessages)
	if err != nil {
		return nil, err
	}
	return &queue.BatchResult{Successful: result.Successful, Failed: result.Failed}, nil
}

// QueueURL lets the adapter back the queue health gateway
func (adapter *SQSSenderAdapter) QueueURL(ctx context.Context, queueName string) (string, error) {
	return adapter.sqsSender.QueueURL(ctx, queueName)
}
