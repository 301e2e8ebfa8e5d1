package metrics

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotelhub/pkg/httpclient"
)

const instrumentationName = "hotelhub/supplier"

type tracingInterceptor struct {
	tracer   trace.Tracer
	supplier string
}

// NewTracingInterceptor opens one client span per supplier call. A nil
// provider means the global one.
func NewTracingInterceptor(provider trace.TracerProvider, supplier string) httpclient.Interceptor {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &tracingInterceptor{
		tracer:   provider.Tracer(instrumentationName),
		supplier: supplier,
	}
}

func (t *tracingInterceptor) Before(ctx context.Context, req *http.Request) context.Context {
	ctx, _ = t.tracer.Start(ctx, "supplier "+req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("supplier", t.supplier),
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	return ctx
}

func (t *tracingInterceptor) After(ctx context.Context, _ *http.Request, resp *httpclient.Response, err error) {
	span := trace.SpanFromContext(ctx)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case resp != nil:
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if resp.StatusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		}
	}
	span.End()
}
