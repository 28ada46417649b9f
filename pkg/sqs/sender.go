// Package sqs publishes JSON messages to Amazon SQS queues.
package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// maxBatchEntries is the SQS limit of entries per SendMessageBatch call
const maxBatchEntries = 10

// BatchMessage is one entry of a batch send. MessageID must be unique within the batch.
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult lists the message IDs accepted and rejected by SQS
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

func newBatchResult() *BatchResult {
	return &BatchResult{Successful: []string{}, Failed: []string{}}
}

func (r *BatchResult) merge(other *BatchResult) {
	r.Successful = append(r.Successful, other.Successful...)
	r.Failed = append(r.Failed, other.Failed...)
}

// SQSClient is the subset of the SQS API used by Sender
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender publishes JSON encoded payloads to queues resolved by name
type Sender struct {
	client SQSClient
}

// NewSender creates a Sender over the given client
func NewSender(client SQSClient) *Sender {
	return &Sender{client: client}
}

// SendMessage encodes body as JSON and publishes it to queueName
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.QueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("resolve queue %s: %w", queueName, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode message body: %w", err)
	}

	if _, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(payload)),
	}); err != nil {
		return fmt.Errorf("send message to %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch publishes messages in chunks of ten, sending the chunks concurrently.
// A chunk that fails as a whole marks all its messages as failed; the error return is
// reserved for failures that prevent any send.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := newBatchResult()
	if len(messages) == 0 {
		return result, nil
	}

	queueURL, err := s.QueueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("resolve queue %s: %w", queueName, err)
	}

	chunks := chunk(messages, maxBatchEntries)
	results := make([]*BatchResult, len(chunks))

	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func(i int, c []BatchMessage) {
			defer wg.Done()
			results[i] = s.sendChunk(ctx, queueURL, c)
		}(i, c)
	}
	wg.Wait()

	for _, r := range results {
		result.merge(r)
	}
	return result, nil
}

// QueueURL resolves the queue URL, which also proves the queue is reachable
func (s *Sender) QueueURL(ctx context.Context, queueName string) (string, error) {
	out, err := s.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", err
	}
	if out.QueueUrl == nil {
		return "", fmt.Errorf("empty queue URL for %s", queueName)
	}
	return *out.QueueUrl, nil
}

func (s *Sender) sendChunk(ctx context.Context, queueURL string, messages []BatchMessage) *BatchResult {
	result := newBatchResult()
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))

	for _, m := range messages {
		payload, err := json.Marshal(m.Body)
		if err != nil {
			result.Failed = append(result.Failed, m.MessageID)
			continue
		}
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(m.MessageID),
			MessageBody: aws.String(string(payload)),
		})
	}
	if len(entries) == 0 {
		return result
	}

	out, err := s.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  entries,
	})
	if err != nil {
		for _, e := range entries {
			result.Failed = append(result.Failed, *e.Id)
		}
		return result
	}

	for _, ok := range out.Successful {
		if ok.Id != nil {
			result.Successful = append(result.Successful, *ok.Id)
		}
	}
	for _, failed := range out.Failed {
		if failed.Id != nil {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}
	return result
}

func chunk(messages []BatchMessage, size int) [][]BatchMessage {
	chunks := make([][]BatchMessage, 0, (len(messages)+size-1)/size)
	for start := 0; start < len(messages); start += size {
		end := min(start+size, len(messages))
		chunks = append(chunks, messages[start:end])
	}
	return chunks
}
