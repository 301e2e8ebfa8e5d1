// Package metrics exposes gateway metrics and tracing hooks
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hotelhub/pkg/httpclient"
)

// Room detail outcomes
const (
	OutcomeDirect   = "direct"
	OutcomeFallback = "fallback"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	SupplierCalls      *prometheus.CounterVec
	SupplierLatency    *prometheus.HistogramVec
	TokenRefreshes     *prometheus.CounterVec
	TokenCacheHits     *prometheus.CounterVec
	EnrichmentMisses   prometheus.Counter
	RoomDetailOutcomes *prometheus.CounterVec
}

// New registers the gateway metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SupplierCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelhub_supplier_calls_total",
			Help: "Outbound supplier calls by supplier and HTTP status",
		}, []string{"supplier", "status"}),
		SupplierLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hotelhub_supplier_call_duration_seconds",
			Help:    "Duration of outbound supplier calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"supplier"}),
		TokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelhub_token_refreshes_total",
			Help: "Supplier token fetches by reason",
		}, []string{"supplier", "reason"}),
		TokenCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelhub_token_cache_hits_total",
			Help: "Supplier calls served with a cached token",
		}, []string{"supplier"}),
		EnrichmentMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "hotelhub_enrichment_misses_total",
			Help: "Facilities without metadata during enrichment",
		}),
		RoomDetailOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelhub_room_detail_outcomes_total",
			Help: "Room detail resolutions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) TokenCacheHit(supplier string) {
	m.TokenCacheHits.WithLabelValues(supplier).Inc()
}

func (m *Metrics) TokenRefreshed(supplier, reason string) {
	m.TokenRefreshes.WithLabelValues(supplier, reason).Inc()
}

func (m *Metrics) EnrichmentMissed(count int) {
	m.EnrichmentMisses.Add(float64(count))
}

func (m *Metrics) RoomDetailResolved(outcome string) {
	m.RoomDetailOutcomes.WithLabelValues(outcome).Inc()
}

type startKey struct{}

type callInterceptor struct {
	metrics  *Metrics
	supplier string
}

// Interceptor counts and times every call made by one supplier's HTTP client
func (m *Metrics) Interceptor(supplier string) httpclient.Interceptor {
	return &callInterceptor{metrics: m, supplier: supplier}
}

func (i *callInterceptor) Before(ctx context.Context, _ *http.Request) context.Context {
	return context.WithValue(ctx, startKey{}, time.Now())
}

func (i *callInterceptor) After(ctx context.Context, _ *http.Request, resp *httpclient.Response, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	i.metrics.SupplierCalls.WithLabelValues(i.supplier, status).Inc()

	if start, ok := ctx.Value(startKey{}).(time.Time); ok {
		i.metrics.SupplierLatency.WithLabelValues(i.supplier).Observe(time.Since(start).Seconds())
	}
}
