package repository

import (
	"context"

	"hotelhub/services/hotel-gateway/domain/model"
)

// Metadata looks up descriptive facility data
type Metadata interface {
	// GetOne returns nil without an error when the facility is unknown
	GetOne(ctx context.Context, id int64) (*model.Facility, error)
	// GetMany returns the known subset of ids in no particular order
	GetMany(ctx context.Context, ids []int64) ([]*model.Facility, error)
}
