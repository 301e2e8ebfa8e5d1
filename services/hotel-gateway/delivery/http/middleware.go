// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"net/http"
	"strings"

	"hotelhub/pkg/api"
	"hotelhub/pkg/logger"
	"hotelhub/services/hotel-gateway/domain/model"
)

// Headers identifying who a request is made on behalf of
const (
	HeaderEmployeeID     = "X-Employee-ID"
	HeaderClientID       = "X-Client-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

type tenantKey struct{}

// TenantMiddleware requires the X-Employee-ID header and stores the caller's
// tenant in the request context
func TenantMiddleware(log logger.LoggerInterface) func(http.Handler) http.Handler {
	responder := api.New(log)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			employeeID := strings.TrimSpace(r.Header.Get(HeaderEmployeeID))
			if employeeID == "" {
				log.WarnContext(ctx, "Missing X-Employee-ID header")
				responder.BadRequest(ctx, w, "X-Employee-ID header is required")
				return
			}

			tenant := model.Tenant{
				EmployeeID: employeeID,
				ClientID:   strings.TrimSpace(r.Header.Get(HeaderClientID)),
				Language:   primaryLanguage(r.Header.Get(HeaderAcceptLanguage)),
			}
			next.ServeHTTP(w, r.WithContext(WithTenant(ctx, tenant)))
		})
	}
}

// WithTenant stores tenant in ctx
func WithTenant(ctx context.Context, tenant model.Tenant) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFromContext returns the tenant stored by TenantMiddleware
func TenantFromContext(ctx context.Context) (model.Tenant, bool) {
	tenant, ok := ctx.Value(tenantKey{}).(model.Tenant)
	return tenant, ok
}

// primaryLanguage returns the first tag of an Accept-Language header
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}
