package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		Brokers:                []string{"kafka:9092"},
		ClientID:               "hotel-gateway",
		AllowAutoTopicCreation: true,
		RequestRetries:         3,
		DialTimeout:            time.Second,
		ProduceRequestTimeout:  2 * time.Second,
	}

	assert.Len(t, cfg.Options(), 6)
	assert.Len(t, Config{Brokers: []string{"kafka:9092"}}.Options(), 1)
}

func TestNewWithConfig_UnreachableBroker(t *testing.T) {
	client, err := NewWithConfig(Config{Brokers: []string{"unreachable:9092"}, ClientID: "test"})
	require.NoError(t, err, "client construction does not dial")
	require.NotNil(t, client)
	assert.IsType(t, &kgo.Client{}, client.GetClient())

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close(), "close is idempotent")
}

func TestClient_Produce_Unreachable(t *testing.T) {
	client, err := New(kgo.SeedBrokers("unreachable:9092"), kgo.DialTimeout(10*time.Millisecond))
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.Error(t, client.Produce(ctx, "topic", []byte("k"), []byte("v")))
}

func TestClient_ProduceAsync_ReportsFailure(t *testing.T) {
	client, err := New(kgo.SeedBrokers("unreachable:9092"), kgo.DialTimeout(10*time.Millisecond))
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	client.ProduceAsync(ctx, "topic", nil, []byte("v"), func(err error) { done <- err })

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("delivery callback was not invoked")
	}
}
