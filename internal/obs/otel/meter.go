// Package otel sets up the OpenTelemetry metrics pipeline for the HTTP
// server.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// MeterSetup holds the meter provider and request tracker.
type MeterSetup struct {
	meterProvider *sdkmetric.MeterProvider
	tracker       *RequestTracker
}

// NewMeterSetup creates the meter provider and exporters from cfg. Returns
// nil when metrics are disabled.
func NewMeterSetup(ctx context.Context, cfg *Config) (*MeterSetup, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	var readers []sdkmetric.Option

	if cfg.Stdout {
		exp, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		readers = append(readers, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp,
			sdkmetric.WithInterval(cfg.ExportInterval),
			sdkmetric.WithTimeout(cfg.ExportTimeout),
		)))
	}

	if cfg.OTLPEndpoint != "" {
		exp, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(cfg.OTLPEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
		}
		readers = append(readers, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp,
			sdkmetric.WithInterval(cfg.ExportInterval),
			sdkmetric.WithTimeout(cfg.ExportTimeout),
		)))
	}

	if len(readers) == 0 {
		return &MeterSetup{}, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", "botwatch"),
	)
	opts := append([]sdkmetric.Option{sdkmetric.WithResource(res)}, readers...)

	meterProvider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(meterProvider)
	meter := meterProvider.Meter("botwatch")

	tracker, err := NewRequestTracker(meter)
	if err != nil {
		_ = meterProvider.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create request tracker: %w", err)
	}

	return &MeterSetup{
		meterProvider: meterProvider,
		tracker:       tracker,
	}, nil
}

// Tracker returns the request tracker, nil when metrics are off.
func (ms *MeterSetup) Tracker() *RequestTracker {
	if ms == nil {
		return nil
	}
	return ms.tracker
}

// Shutdown flushes and shuts down the meter provider.
func (ms *MeterSetup) Shutdown(ctx context.Context) error {
	if ms == nil || ms.meterProvider == nil {
		return nil
	}
	return ms.meterProvider.Shutdown(ctx)
}
