package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestTracker records per-request metrics.
type RequestTracker struct {
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewRequestTracker creates the request instruments on meter.
func NewRequestTracker(meter metric.Meter) (*RequestTracker, error) {
	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of handled HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &RequestTracker{
		requests: requests,
		latency:  latency,
	}, nil
}

// Record tracks one completed request.
func (rt *RequestTracker) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if rt == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	rt.requests.Add(ctx, 1, attrs)
	rt.latency.Record(ctx, float64(elapsed.Microseconds())/1000.0, attrs)
}
