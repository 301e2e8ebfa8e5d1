package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
	"hotelhub/services/hotel-gateway/supplier"
)

// CredentialUseCase defines the interface for client-specific supplier logins
type CredentialUseCase interface {
	// SaveOverride stores the login a client uses for a supplier, replacing any previous one
	SaveOverride(ctx context.Context, supplierCode, clientID string, credential model.Credential) (*model.CredentialOverride, error)
	// DeleteOverride makes the client fall back to the supplier's default login
	DeleteOverride(ctx context.Context, supplierCode, clientID string) error
}

// credentialUseCase implements the CredentialUseCase interface
type credentialUseCase struct {
	// credentialRepo is the repository interface for credential database operations
	credentialRepo repository.Credential
	// cipher encrypts credentials before they are stored
	cipher *supplier.Cipher
	// suppliers are the codes overrides may be stored for
	suppliers map[string]struct{}
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewCredentialUseCase creates a new instance of credentialUseCase
func NewCredentialUseCase(credentialRepo repository.Credential, cipher *supplier.Cipher, supplierCodes []string, appLogger logger.LoggerInterface) CredentialUseCase {
	suppliers := make(map[string]struct{}, len(supplierCodes))
	for _, code := range supplierCodes {
		suppliers[code] = struct{}{}
	}
	return &credentialUseCase{
		credentialRepo: credentialRepo,
		cipher:         cipher,
		suppliers:      suppliers,
		logger:         appLogger,
	}
}

// SaveOverride encrypts and stores a client's supplier login
func (uc *credentialUseCase) SaveOverride(ctx context.Context, supplierCode, clientID string, credential model.Credential) (*model.CredentialOverride, error) {
	uc.logger.InfoContext(ctx, "Saving credential override in usecase", "supplier", supplierCode, "clientID", clientID)

	if err := uc.validateKey(ctx, supplierCode, clientID); err != nil {
		return nil, err
	}
	if !credential.Valid() {
		uc.logger.WarnContext(ctx, "Username and password are required for credential override")
		return nil, domain.NewError(domain.ErrInvalidRequest, "username and password are required")
	}

	override, err := supplier.SealCredential(uc.cipher, supplierCode, clientID, credential)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to encrypt credentials", "supplier", supplierCode, "error", err)
		return nil, fmt.Errorf("failed to encrypt credentials: %w", err)
	}

	if err := uc.credentialRepo.Upsert(ctx, override); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to save credential override in repository", "supplier", supplierCode, "clientID", clientID, "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Credential override saved successfully in usecase", "id", override.ID, "supplier", supplierCode, "clientID", clientID)
	return override, nil
}

// DeleteOverride removes a client's supplier login
func (uc *credentialUseCase) DeleteOverride(ctx context.Context, supplierCode, clientID string) error {
	uc.logger.InfoContext(ctx, "Deleting credential override in usecase", "supplier", supplierCode, "clientID", clientID)

	if err := uc.validateKey(ctx, supplierCode, clientID); err != nil {
		return err
	}

	if err := uc.credentialRepo.Delete(ctx, supplierCode, clientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Credential override not found for deletion", "supplier", supplierCode, "clientID", clientID)
			return domain.NewError(domain.ErrNotFound, "credential override not found")
		}
		uc.logger.ErrorContext(ctx, "Failed to delete credential override in repository", "supplier", supplierCode, "clientID", clientID, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Credential override deleted successfully in usecase", "supplier", supplierCode, "clientID", clientID)
	return nil
}

func (uc *credentialUseCase) validateKey(ctx context.Context, supplierCode, clientID string) error {
	if _, ok := uc.suppliers[supplierCode]; !ok {
		uc.logger.WarnContext(ctx, "Unknown supplier for credential override", "supplier", supplierCode)
		return domain.NewError(domain.ErrNotFound, "supplier not found")
	}
	if strings.TrimSpace(clientID) == "" {
		uc.logger.WarnContext(ctx, "Client ID is required for credential override")
		return domain.NewError(domain.ErrInvalidRequest, "client id is required")
	}
	return nil
}
