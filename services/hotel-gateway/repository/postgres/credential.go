// Package postgres provides PostgreSQL implementation for credential repository
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

// credentialRepository implements the Credential repository interface using PostgreSQL
type credentialRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewCredentialRepository creates a new instance of credentialRepository
func NewCredentialRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Credential {
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// GetOverride retrieves the override of a client for a supplier
func (r *credentialRepository) GetOverride(ctx context.Context, supplierCode, clientID string) (*model.CredentialOverride, error) {
	r.logger.DebugContext(ctx, "Getting credential override", "supplier", supplierCode, "clientID", clientID)
	var override model.CredentialOverride
	err := r.db.WithContext(ctx).
		Where("supplier_code = ? AND client_id = ?", supplierCode, clientID).
		First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get credential override", "supplier", supplierCode, "clientID", clientID, "error", err)
		return nil, fmt.Errorf("failed to get credential override: %w", err)
	}
	return &override, nil
}

// Upsert creates the override or replaces the stored credentials of an existing one
func (r *credentialRepository) Upsert(ctx context.Context, override *model.CredentialOverride) error {
	r.logger.InfoContext(ctx, "Saving credential override", "supplier", override.SupplierCode, "clientID", override.ClientID)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supplier_code"}, {Name: "client_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"credentials", "updated_at", "deleted_at"}),
		}).
		Create(override).Error
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to save credential override", "supplier", override.SupplierCode, "clientID", override.ClientID, "error", err)
		return fmt.Errorf("failed to save credential override: %w", err)
	}
	r.logger.InfoContext(ctx, "Credential override saved", "id", override.ID, "supplier", override.SupplierCode)
	return nil
}

// Delete removes an override (soft delete)
func (r *credentialRepository) Delete(ctx context.Context, supplierCode, clientID string) error {
	r.logger.InfoContext(ctx, "Deleting credential override", "supplier", supplierCode, "clientID", clientID)
	result := r.db.WithContext(ctx).
		Where("supplier_code = ? AND client_id = ?", supplierCode, clientID).
		Delete(&model.CredentialOverride{})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to delete credential override", "supplier", supplierCode, "clientID", clientID, "error", result.Error)
		return fmt.Errorf("failed to delete credential override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Credential override not found for deletion", "supplier", supplierCode, "clientID", clientID)
		return domain.ErrNotFound
	}
	return nil
}
