package supplier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

// CredentialResolver picks the login a supplier call is made with
type CredentialResolver interface {
	// Resolve returns the client override when one exists, else the supplier default.
	// A blank username or password yields domain.ErrCredentialsMissing.
	Resolve(ctx context.Context, supplierCode string, tenant model.Tenant) (model.Credential, error)
}

type credentialResolver struct {
	defaults  map[string]model.Credential
	overrides repository.Credential
	cipher    *Cipher
	logger    logger.LoggerInterface
}

// NewCredentialResolver creates a resolver. overrides and cipher may both be nil,
// in which case only the defaults are used.
func NewCredentialResolver(defaults map[string]model.Credential, overrides repository.Credential, cipher *Cipher, log logger.LoggerInterface) CredentialResolver {
	return &credentialResolver{
		defaults:  defaults,
		overrides: overrides,
		cipher:    cipher,
		logger:    logger.WithComponent(log, "credentials"),
	}
}

func (r *credentialResolver) Resolve(ctx context.Context, supplierCode string, tenant model.Tenant) (model.Credential, error) {
	credential := r.defaults[supplierCode]

	if tenant.ClientID != "" && r.overrides != nil && r.cipher != nil {
		override, err := r.override(ctx, supplierCode, tenant.ClientID)
		if err != nil {
			return model.Credential{}, err
		}
		if override != nil {
			credential = *override
		}
	}

	if !credential.Valid() {
		return model.Credential{}, domain.NewError(domain.ErrCredentialsMissing,
			fmt.Sprintf("login or password is not configured for supplier %s", supplierCode))
	}
	return credential, nil
}

func (r *credentialResolver) override(ctx context.Context, supplierCode, clientID string) (*model.Credential, error) {
	stored, err := r.overrides.GetOverride(ctx, supplierCode, clientID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	plaintext, err := r.cipher.Decrypt(stored.Credentials)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to decrypt credential override", "supplier", supplierCode, "clientID", clientID, "error", err)
		return nil, domain.WrapError(domain.ErrCredentialsMissing, "credential override cannot be decrypted", err)
	}

	var credential model.Credential
	if err := json.Unmarshal([]byte(plaintext), &credential); err != nil {
		return nil, domain.WrapError(domain.ErrCredentialsMissing, "credential override is malformed", err)
	}

	r.logger.DebugContext(ctx, "Using credential override", "supplier", supplierCode, "clientID", clientID)
	return &credential, nil
}

// SealCredential encrypts a credential into an override row
func SealCredential(c *Cipher, supplierCode, clientID string, credential model.Credential) (*model.CredentialOverride, error) {
	payload, err := json.Marshal(credential)
	if err != nil {
		return nil, err
	}
	sealed, err := c.Encrypt(string(payload))
	if err != nil {
		return nil, err
	}
	return &model.CredentialOverride{
		SupplierCode: supplierCode,
		ClientID:     clientID,
		Credentials:  sealed,
	}, nil
}
