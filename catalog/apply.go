package catalog

import (
	"context"
	"fmt"

	"github.com/openjax/measure"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/openjax/measure/catalog"

// Units holds the units a catalog registered, by family and by name.
type Units struct {
	byFamily map[string]map[string]*measure.Unit
	byName   map[string]*measure.Unit
	order    []*measure.Unit
}

func newUnits() *Units {
	return &Units{
		byFamily: make(map[string]map[string]*measure.Unit),
		byName:   make(map[string]*measure.Unit),
	}
}

func (u *Units) add(family string, unit *measure.Unit) {
	if u.byFamily[family] == nil {
		u.byFamily[family] = make(map[string]*measure.Unit)
	}
	u.byFamily[family][unit.Name()] = unit
	u.byName[unit.Name()] = unit
	u.order = append(u.order, unit)
}

// Lookup returns the unit named name in family. Compound units are filed
// under their derived family, e.g. "distance/time".
func (u *Units) Lookup(family, name string) (*measure.Unit, bool) {
	unit, ok := u.byFamily[family][name]
	return unit, ok
}

// Unit returns the unit named name in any family, e.g. "km" or "km/hr".
func (u *Units) Unit(name string) (*measure.Unit, bool) {
	unit, ok := u.byName[name]
	return unit, ok
}

// All returns the units in the order they were registered.
func (u *Units) All() []*measure.Unit {
	all := make([]*measure.Unit, len(u.order))
	copy(all, u.order)
	return all
}

// ApplyOption configures Apply.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	tracerProvider trace.TracerProvider
}

// WithTracerProvider sets the provider of the tracer used by Apply. If not
// provided, the global provider is used.
func WithTracerProvider(tp trace.TracerProvider) ApplyOption {
	return func(c *applyConfig) {
		c.tracerProvider = tp
	}
}

// Apply registers the catalog's families, units, ratios and products in r,
// in declaration order. Every failure is a measure.KindConfiguration error;
// units registered before the failure stay in r.
func (c *Catalog) Apply(ctx context.Context, r *measure.Registry, opts ...ApplyOption) (*Units, error) {
	cfg := &applyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}

	_, span := cfg.tracerProvider.Tracer(tracerName).Start(ctx, "catalog.apply")
	defer span.End()

	span.SetAttributes(
		attribute.String("measure.registry.id", r.ID()),
		attribute.Int("catalog.family_count", len(c.Families)),
		attribute.Int("catalog.ratio_count", len(c.Ratios)),
		attribute.Int("catalog.product_count", len(c.Products)),
	)

	units, err := c.apply(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog apply failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.unit_count", len(units.order)))
	span.SetStatus(codes.Ok, "catalog applied")
	return units, nil
}

func (c *Catalog) apply(r *measure.Registry) (*Units, error) {
	const op = "catalog.Apply"
	units := newUnits()

	for _, fam := range c.Families {
		def, err := r.RegisterDefault(fam.Name, fam.Default)
		if err != nil {
			return nil, measure.NewConfigurationError(op, fmt.Errorf("family %s: %w", fam.Name, err))
		}
		units.add(fam.Name, def)

		for _, u := range fam.Units {
			basisName := u.Basis
			if basisName == "" {
				basisName = fam.Default
			}
			basis, ok := units.Lookup(fam.Name, basisName)
			if !ok {
				return nil, measure.NewConfigurationError(op,
					fmt.Errorf("family %s: basis %s: %w", fam.Name, basisName, measure.ErrUnknownUnit))
			}

			unit, err := c.register(r, u, basis)
			if err != nil {
				return nil, measure.NewConfigurationError(op,
					fmt.Errorf("family %s: unit %s: %w", fam.Name, u.name(basisName), err))
			}
			units.add(fam.Name, unit)
		}
	}

	for _, ratio := range c.Ratios {
		unit, err := compound(units, ratio.Numerator, ratio.Denominator, r.Ratio)
		if err != nil {
			return nil, measure.NewConfigurationError(op, fmt.Errorf("ratio %s/%s: %w", ratio.Numerator, ratio.Denominator, err))
		}
		units.add(unit.Family(), unit)
	}
	for _, product := range c.Products {
		unit, err := compound(units, product.First, product.Second, r.Product)
		if err != nil {
			return nil, measure.NewConfigurationError(op, fmt.Errorf("product %s·%s: %w", product.First, product.Second, err))
		}
		units.add(unit.Family(), unit)
	}

	return units, nil
}

func (c *Catalog) register(r *measure.Registry, u Unit, basis *measure.Unit) (*measure.Unit, error) {
	if u.Prefix != "" {
		p, ok := measure.MetricPrefixNamed(u.Prefix)
		if !ok {
			return nil, fmt.Errorf("unknown prefix %q", u.Prefix)
		}
		return r.RegisterPrefixed(p, basis)
	}

	f, err := u.Factor.Value()
	if err != nil {
		return nil, err
	}
	return r.Register(u.Name, f, basis)
}

func compound(units *Units, left, right string, build func(a, b *measure.Unit) (*measure.Unit, error)) (*measure.Unit, error) {
	a, ok := units.Unit(left)
	if !ok {
		return nil, fmt.Errorf("%s: %w", left, measure.ErrUnknownUnit)
	}
	b, ok := units.Unit(right)
	if !ok {
		return nil, fmt.Errorf("%s: %w", right, measure.ErrUnknownUnit)
	}
	return build(a, b)
}
