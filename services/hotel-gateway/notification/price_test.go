package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
)

type record struct {
	topic string
	key   []byte
	value []byte
}

type fakeProducer struct {
	records []record
	err     error
}

func (f *fakeProducer) Produce(_ context.Context, topic string, key, value []byte) error {
	f.records = append(f.records, record{topic, key, value})
	return f.err
}

func (f *fakeProducer) ProduceAsync(_ context.Context, topic string, key, value []byte, onDone func(error)) {
	f.records = append(f.records, record{topic, key, value})
	if onDone != nil {
		onDone(f.err)
	}
}

func (f *fakeProducer) Close() error { return nil }
func (f *fakeProducer) GetClient() *kgo.Client { return nil }

func TestKafkaNotifier_Publishes(t *testing.T) {
	producer := &fakeProducer{}
	notifier := NewKafkaNotifier(producer, "hotel.price-compare", logger.NoOpLogger())

	err := notifier.NotifyPriceComparison(context.Background(), model.PriceComparison{
		ServiceID:     "svc-1",
		SupplierCode:  "acme",
		QuotedPrice:   100,
		ResolvedPrice: 110,
	})
	require.NoError(t, err)
	require.Len(t, producer.records, 1)

	rec := producer.records[0]
	assert.Equal(t, "hotel.price-compare", rec.topic)
	assert.Equal(t, []byte("acme"), rec.key)

	var published model.PriceComparison
	require.NoError(t, json.Unmarshal(rec.value, &published))
	assert.Len(t, published.ID, 26)
	assert.False(t, published.OccurredAt.IsZero())
	assert.Equal(t, 110.0, published.ResolvedPrice)
}

func TestKafkaNotifier_DeliveryFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	producer := &fakeProducer{err: errors.New("broker unavailable")}
	notifier := NewKafkaNotifier(producer, "topic", logger.NewJSON(&buf, slog.LevelDebug))

	err := notifier.NotifyPriceComparison(context.Background(), model.PriceComparison{SupplierCode: "acme"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "broker unavailable")
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(logger.NewJSON(&buf, slog.LevelInfo))

	require.NoError(t, notifier.NotifyPriceComparison(context.Background(), model.PriceComparison{SupplierCode: "acme", QuotedPrice: 5}))
	assert.Contains(t, buf.String(), "Price comparison")
}
