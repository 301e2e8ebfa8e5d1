// Package notification publishes gateway events
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"hotelhub/pkg/kafka"
	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

type kafkaNotifier struct {
	producer kafka.KafkaClient
	topic    string
	logger   logger.LoggerInterface
	now      func() time.Time
}

// NewKafkaNotifier publishes price comparisons keyed by supplier code.
// Delivery happens in the background; failures are only logged.
func NewKafkaNotifier(producer kafka.KafkaClient, topic string, log logger.LoggerInterface) repository.PriceNotifier {
	return &kafkaNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger.WithComponent(log, "price-notifier"),
		now:      time.Now,
	}
}

func (n *kafkaNotifier) NotifyPriceComparison(ctx context.Context, comparison model.PriceComparison) error {
	if comparison.ID == "" {
		comparison.ID = ulid.Make().String()
	}
	if comparison.OccurredAt.IsZero() {
		comparison.OccurredAt = n.now().UTC()
	}

	payload, err := json.Marshal(comparison)
	if err != nil {
		return fmt.Errorf("failed to encode price comparison: %w", err)
	}

	id := comparison.ID
	n.producer.ProduceAsync(context.WithoutCancel(ctx), n.topic, []byte(comparison.SupplierCode), payload, func(err error) {
		if err != nil {
			n.logger.Error("Failed to publish price comparison", "id", id, "topic", n.topic, "error", err)
			return
		}
		n.logger.Debug("Price comparison published", "id", id, "topic", n.topic)
	})
	return nil
}

type logNotifier struct {
	logger logger.LoggerInterface
}

// NewLogNotifier writes price comparisons to the log when no broker is configured
func NewLogNotifier(log logger.LoggerInterface) repository.PriceNotifier {
	return &logNotifier{logger: logger.WithComponent(log, "price-notifier")}
}

func (n *logNotifier) NotifyPriceComparison(ctx context.Context, comparison model.PriceComparison) error {
	n.logger.InfoContext(ctx, "Price comparison",
		"serviceID", comparison.ServiceID,
		"supplier", comparison.SupplierCode,
		"quoted", comparison.QuotedPrice,
		"resolved", comparison.ResolvedPrice,
		"replaced", comparison.Replaced,
	)
	return nil
}
