package measure

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/openjax/measure"

// registryMetrics holds the OpenTelemetry instruments of a Registry.
// They are created once in NewRegistry and shared by all operations.
type registryMetrics struct {
	// registrations counts units added to the registry, by family and kind.
	registrations metric.Int64Counter

	// cascaded counts table entries written by cascades.
	cascaded metric.Int64Counter

	// unresolved counts Factor calls that fell through to the unrelated
	// units policy.
	unresolved metric.Int64Counter

	// compound counts Ratio and Product lookups with a hit or miss result.
	compound metric.Int64Counter

	registryID attribute.KeyValue
}

func newRegistryMetrics(mp metric.MeterProvider, registryID string) (*registryMetrics, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	m := &registryMetrics{
		registryID: attribute.String("registry.id", registryID),
	}
	var err error

	m.registrations, err = meter.Int64Counter(
		"measure.unit.registrations",
		metric.WithDescription("Number of units registered"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create registrations counter: %w", err)
	}

	m.cascaded, err = meter.Int64Counter(
		"measure.unit.cascaded_factors",
		metric.WithDescription("Number of conversion factors derived by cascading"),
		metric.WithUnit("{factor}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cascaded counter: %w", err)
	}

	m.unresolved, err = meter.Int64Counter(
		"measure.conversion.unresolved",
		metric.WithDescription("Number of conversions between units with no known factor"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create unresolved counter: %w", err)
	}

	m.compound, err = meter.Int64Counter(
		"measure.compound.lookups",
		metric.WithDescription("Number of ratio and product unit lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create compound counter: %w", err)
	}

	return m, nil
}

func (m *registryMetrics) recordRegistration(u *Unit, cascaded int) {
	ctx := context.Background()
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		m.registryID,
		attribute.String("family", u.family),
		attribute.String("kind", u.kind.String()),
	))
	if cascaded > 0 {
		m.cascaded.Add(ctx, int64(cascaded), metric.WithAttributes(
			m.registryID,
			attribute.String("family", u.family),
		))
	}
}

func (m *registryMetrics) recordUnresolved(from, to *Unit, policy UnrelatedPolicy) {
	m.unresolved.Add(context.Background(), 1, metric.WithAttributes(
		m.registryID,
		attribute.String("from", from.name),
		attribute.String("to", to.name),
		attribute.String("policy", policy.String()),
	))
}

func (m *registryMetrics) recordCompound(kind Kind, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.compound.Add(context.Background(), 1, metric.WithAttributes(
		m.registryID,
		attribute.String("kind", kind.String()),
		attribute.String("result", result),
	))
}
