package repository

import (
	"context"

	"hotelhub/services/hotel-gateway/domain/model"
)

// Credential interface defines the contract for client-specific supplier logins
type Credential interface {
	// GetOverride returns the override of a client for a supplier, or domain.ErrNotFound
	GetOverride(ctx context.Context, supplierCode, clientID string) (*model.CredentialOverride, error)
	// Upsert creates or replaces the override of a client for a supplier
	Upsert(ctx context.Context, override *model.CredentialOverride) error
	// Delete removes an override (soft delete)
	Delete(ctx context.Context, supplierCode, clientID string) error
}
