// Package supplier runs authenticated calls against upstream hotel suppliers
package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hotelhub/pkg/httpclient"
	"hotelhub/pkg/jwt"
	"hotelhub/pkg/logger"
	"hotelhub/pkg/validator"
	"hotelhub/services/hotel-gateway/domain"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
)

const (
	// DefaultLoginPath is the token endpoint of the reference supplier API
	DefaultLoginPath = "/api/v1/{_locale}/gateway/login"
	// LocaleParam is the path parameter every supplier path is localized with
	LocaleParam = "_locale"
)

// Token refresh reasons
const (
	RefreshMiss         = "miss"
	RefreshForced       = "forced"
	RefreshUnauthorized = "unauthorized"
)

// Observer receives token lifecycle events
type Observer interface {
	TokenCacheHit(supplier string)
	TokenRefreshed(supplier, reason string)
}

type noopObserver struct{}

func (noopObserver) TokenCacheHit(string) {}
func (noopObserver) TokenRefreshed(string, string) {}

// Call is one business request. Path may reference {_locale}, which is filled
// from the tenant.
type Call struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      map[string]string
	Body       any
	// ForceRefresh skips the token cache for the first attempt
	ForceRefresh bool
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Locale   string `json:"-" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type errorEnvelope struct {
	Description string `json:"description"`
}

// Executor injects a cached bearer token into supplier calls and refreshes it
// once when the supplier answers 401
type Executor struct {
	supplierCode string
	client       httpclient.HTTPClient
	credentials  CredentialResolver
	cache        repository.TokenCache
	tokens       jwt.TokenInspector
	validator    validator.Validator
	observer     Observer
	loginPath    string
	logger       logger.LoggerInterface
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithObserver sets the token event observer
func WithObserver(o Observer) ExecutorOption {
	return func(e *Executor) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithLoginPath overrides DefaultLoginPath
func WithLoginPath(path string) ExecutorOption {
	return func(e *Executor) {
		if path != "" {
			e.loginPath = path
		}
	}
}

// WithTokenInspector sets how long fetched tokens are cached
func WithTokenInspector(i jwt.TokenInspector) ExecutorOption {
	return func(e *Executor) {
		if i != nil {
			e.tokens = i
		}
	}
}

// NewExecutor creates an executor for one supplier
func NewExecutor(supplierCode string, client httpclient.HTTPClient, credentials CredentialResolver, cache repository.TokenCache, log logger.LoggerInterface, opts ...ExecutorOption) *Executor {
	e := &Executor{
		supplierCode: supplierCode,
		client:       client,
		credentials:  credentials,
		cache:        cache,
		tokens:       jwt.New(),
		validator:    validator.NewValidator(),
		observer:     noopObserver{},
		loginPath:    DefaultLoginPath,
		logger:       logger.WithSupplier(logger.WithComponent(log, "executor"), supplierCode),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SupplierCode returns the supplier this executor talks to
func (e *Executor) SupplierCode() string {
	return e.supplierCode
}

// TokenKey is the cache key of a supplier token for a tenant
func TokenKey(supplierCode string, tenant model.Tenant) string {
	parts := []string{"hotels:" + supplierCode + ":auth-token", tenant.Locale(), tenant.EmployeeID}
	if tenant.ClientID != "" {
		parts = append(parts, tenant.ClientID)
	}
	return strings.Join(parts, "_")
}

// Execute performs call and decodes the JSON body into out, which may be nil
func (e *Executor) Execute(ctx context.Context, tenant model.Tenant, call Call, out any) error {
	credential, err := e.credentials.Resolve(ctx, e.supplierCode, tenant)
	if err != nil {
		return err
	}

	reason := RefreshMiss
	if call.ForceRefresh {
		reason = RefreshForced
	}
	token, err := e.token(ctx, tenant, credential, call.ForceRefresh, reason)
	if err != nil {
		return err
	}

	resp, err := e.send(ctx, tenant, call, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		e.logger.WarnContext(ctx, "Supplier rejected token, refreshing", "path", call.Path)
		token, err = e.token(ctx, tenant, credential, true, RefreshUnauthorized)
		if err != nil {
			return err
		}
		resp, err = e.send(ctx, tenant, call, token)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return domain.NewError(domain.ErrAuthenticationFailed,
				fmt.Sprintf("supplier %s rejected a freshly issued token", e.supplierCode))
		}
	}

	return e.decode(ctx, call.Path, resp, out)
}

func (e *Executor) token(ctx context.Context, tenant model.Tenant, credential model.Credential, force bool, reason string) (string, error) {
	key := TokenKey(e.supplierCode, tenant)

	if !force {
		cached, found, err := e.cache.Get(ctx, key)
		switch {
		case err != nil:
			e.logger.WarnContext(ctx, "Token cache unavailable, authenticating", "error", err)
		case found:
			e.observer.TokenCacheHit(e.supplierCode)
			return cached, nil
		}
	}

	token, err := e.Authenticate(ctx, tenant, credential)
	if err != nil {
		return "", err
	}
	e.observer.TokenRefreshed(e.supplierCode, reason)

	if ttl := e.tokens.TTL(token); ttl > 0 {
		if err := e.cache.Set(ctx, key, token, ttl); err != nil {
			e.logger.WarnContext(ctx, "Failed to cache token", "error", err)
		}
	}
	return token, nil
}

// Authenticate exchanges a credential for a bearer token
func (e *Executor) Authenticate(ctx context.Context, tenant model.Tenant, credential model.Credential) (string, error) {
	req := loginRequest{Login: credential.Username, Password: credential.Password, Locale: tenant.Locale()}
	if err := e.validator.Validate(req); err != nil {
		return "", domain.WrapError(domain.ErrInvalidRequest, "login request is incomplete", err)
	}

	resp, err := e.client.Send(ctx, &httpclient.Request{
		Method:     http.MethodPost,
		Path:       e.loginPath,
		PathParams: map[string]string{LocaleParam: req.Locale},
		Body:       req,
	})
	if err != nil {
		return "", domain.WrapError(domain.ErrAuthenticationFailed, "login request failed", err)
	}
	if !resp.IsSuccess() {
		message := fmt.Sprintf("login rejected with status %d", resp.StatusCode)
		if description := describe(resp.Body); description != "" {
			message = "login rejected: " + description
		}
		return "", domain.NewError(domain.ErrAuthenticationFailed, message)
	}

	var login loginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil {
		return "", domain.WrapError(domain.ErrAuthenticationFailed, "login response is malformed", err)
	}
	if login.AccessToken == "" {
		return "", domain.NewError(domain.ErrAuthenticationFailed, "login response carries no access token")
	}

	e.logger.InfoContext(ctx, "Supplier token issued", "employeeID", tenant.EmployeeID, "clientID", tenant.ClientID)
	return login.AccessToken, nil
}

func (e *Executor) send(ctx context.Context, tenant model.Tenant, call Call, token string) (*httpclient.Response, error) {
	params := make(map[string]string, len(call.PathParams)+1)
	for k, v := range call.PathParams {
		params[k] = v
	}
	params[LocaleParam] = tenant.Locale()

	resp, err := e.client.Send(ctx, &httpclient.Request{
		Method:     call.Method,
		Path:       call.Path,
		PathParams: params,
		Query:      call.Query,
		Headers:    map[string]string{"Authorization": "Bearer " + token},
		Body:       call.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("supplier %s call %s failed: %w", e.supplierCode, call.Path, err)
	}
	return resp, nil
}

func (e *Executor) decode(ctx context.Context, path string, resp *httpclient.Response, out any) error {
	if !resp.IsSuccess() {
		message := fmt.Sprintf("supplier %s responded with status %d", e.supplierCode, resp.StatusCode)
		if description := describe(resp.Body); description != "" {
			message = description
		}
		e.logger.WarnContext(ctx, "Supplier call rejected", "path", path, "status", resp.StatusCode, "message", message)
		return domain.NewError(domain.ErrSupplierRejected, message)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		e.logger.ErrorContext(ctx, "Supplier returned empty body", "path", path)
		return domain.NewError(domain.ErrSupplierEmptyResponse,
			fmt.Sprintf("supplier %s returned an empty response for %s", e.supplierCode, path))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		e.logger.ErrorContext(ctx, "Failed to decode supplier response", "path", path, "error", err)
		return domain.WrapError(domain.ErrSupplierDeserialization,
			fmt.Sprintf("supplier %s response for %s could not be decoded", e.supplierCode, path), err)
	}
	return nil
}

func describe(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Description
}
