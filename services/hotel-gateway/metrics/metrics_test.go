package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hotelhub/pkg/httpclient"
)

func TestMetrics_Hooks(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TokenCacheHit("acme")
	m.TokenCacheHit("acme")
	m.TokenRefreshed("acme", "unauthorized")
	m.EnrichmentMissed(3)
	m.RoomDetailResolved(OutcomeFallback)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TokenCacheHits.WithLabelValues("acme")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokenRefreshes.WithLabelValues("acme", "unauthorized")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EnrichmentMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RoomDetailOutcomes.WithLabelValues(OutcomeFallback)))
}

func TestMetrics_Interceptor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	m := New(prometheus.NewRegistry())
	client := httpclient.New(
		httpclient.WithBaseURL(server.URL),
		httpclient.WithInterceptors(m.Interceptor("acme")),
	)

	_, err := client.Send(context.Background(), &httpclient.Request{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SupplierCalls.WithLabelValues("acme", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SupplierLatency))

	interceptor := m.Interceptor("beta")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	interceptor.After(context.Background(), req, nil, errors.New("dial tcp: refused"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SupplierCalls.WithLabelValues("beta", "error")))
}

func TestTracingInterceptor_StartsSpan(t *testing.T) {
	interceptor := NewTracingInterceptor(noop.NewTracerProvider(), "acme")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/en/hotels/search", nil)

	ctx := interceptor.Before(context.Background(), req)
	require.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		interceptor.After(ctx, req, &httpclient.Response{StatusCode: http.StatusBadGateway}, nil)
		interceptor.After(ctx, req, nil, errors.New("timeout"))
	})
	assert.NotNil(t, trace.SpanFromContext(ctx))
}
