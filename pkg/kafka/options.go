package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// WithBrokers sets the Kafka brokers
func WithBrokers(brokers ...string) kgo.Opt {
	return kgo.SeedBrokers(brokers...)
}

// WithClientID sets the client ID for the Kafka client
func WithClientID(clientID string) kgo.Opt {
	return kgo.ClientID(clientID)
}

// WithDefaultProduceTopic sets the topic used when a record has none
func WithDefaultProduceTopic(topic string) kgo.Opt {
	return kgo.DefaultProduceTopic(topic)
}

// WithAllowAutoTopicCreation enables automatic topic creation
func WithAllowAutoTopicCreation() kgo.Opt {
	return kgo.AllowAutoTopicCreation()
}

// WithRequestRetries sets the number of request retries
func WithRequestRetries(n int) kgo.Opt {
	return kgo.RequestRetries(n)
}

// WithDialTimeout sets the dial timeout
func WithDialTimeout(timeout time.Duration) kgo.Opt {
	return kgo.DialTimeout(timeout)
}

// WithProduceRequestTimeout sets how long the broker may take to ack a produce request
func WithProduceRequestTimeout(timeout time.Duration) kgo.Opt {
	return kgo.ProduceRequestTimeout(timeout)
}
