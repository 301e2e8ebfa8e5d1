package repository

import (
	"context"

	"hotelhub/services/hotel-gateway/domain/model"
)

// PriceNotifier publishes price comparisons. Delivery is best effort.
type PriceNotifier interface {
	NotifyPriceComparison(ctx context.Context, comparison model.PriceComparison) error
}
