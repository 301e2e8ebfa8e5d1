package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the interface for producing Kafka records
type KafkaClient interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
	// ProduceAsync enqueues a record; onDone, if set, receives the delivery result
	ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error))
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka producer wrapper
type Client struct {
	client *kgo.Client
}

// New creates a new Kafka client with the provided options
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{client: kafkaClient}, nil
}

// Produce sends a message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, key, value []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}

	return k.client.ProduceSync(ctx, record).FirstErr()
}

// ProduceAsync sends a message to a Kafka topic asynchronously
func (k *Client) ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error)) {
	record := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}

	k.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if onDone != nil {
			onDone(err)
		}
	})
}

// Close flushes nothing and closes the Kafka client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}
