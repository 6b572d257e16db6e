package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns the package tracer for name. Without a configured SDK the
// global provider is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.Tracer("lifegrid." + name)
}
