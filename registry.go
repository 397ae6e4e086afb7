package measure

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

var (
	errEmptyName      = errors.New("name is empty")
	errCompoundBasis  = errors.New("basis must be a simple unit")
	errDefaultMissing = errors.New("family has no default unit")
)

// Registry is a unit conversion graph. It stores, for every pair of units
// of a family, the factor converting one into the other, and caches the
// compound units built from them.
//
// Registering a unit cascades its factor to every unit already known to
// its basis, so Factor never walks the graph: every conversion is one or
// two map lookups.
//
// The factor table uses the layout:
//
//	to -> from -> f   where 1 from = f × to
//
// All methods are safe for concurrent use. Registrations take the write
// lock for the whole cascade, so a unit's entries become visible together.
type Registry struct {
	id string

	mu       sync.RWMutex
	factors  map[*Unit]map[*Unit]float64
	defaults map[string]*Unit
	units    []*Unit
	seq      uint64

	compoundMu sync.RWMutex
	ratios     map[operands]*Unit
	products   map[operands]*Unit

	policy  UnrelatedPolicy
	logger  *slog.Logger
	metrics *registryMetrics
}

// operands keys the compound caches by operand identity, so two distinct
// units that happen to share a name never alias.
type operands struct {
	left, right *Unit
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	r := &Registry{
		id:       uuid.NewString(),
		factors:  make(map[*Unit]map[*Unit]float64),
		defaults: make(map[string]*Unit),
		ratios:   make(map[operands]*Unit),
		products: make(map[operands]*Unit),
		policy:   cfg.policy,
	}
	r.logger = cfg.logger.With("component", "measure", "registry", r.id)

	m, err := newRegistryMetrics(cfg.meterProvider, r.id)
	if err != nil {
		r.logger.Warn("failed to initialize metrics", "error", err)
		m, _ = newRegistryMetrics(nil, r.id)
	}
	r.metrics = m

	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry. It is created on first use
// and lives for the rest of the process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// ID returns the unique identifier of the registry. It tags log records
// and metrics so isolated registries can be told apart.
func (r *Registry) ID() string {
	return r.id
}

// Policy returns how the registry resolves unrelated units.
func (r *Registry) Policy() UnrelatedPolicy {
	return r.policy
}

// RegisterDefault creates the basis unit of family, with factor 1.
// A family has at most one default unit; a second call for the same family
// fails with a KindConfiguration error wrapping ErrDuplicateDefault.
func (r *Registry) RegisterDefault(family, name string) (*Unit, error) {
	const op = "Registry.RegisterDefault"

	if family == "" || name == "" {
		return nil, NewInvalidArgumentError(op, errEmptyName).WithContext(map[string]any{
			"family": family,
			"unit":   name,
		})
	}

	r.mu.Lock()
	if existing, ok := r.defaults[family]; ok {
		r.mu.Unlock()
		return nil, NewConfigurationError(op, ErrDuplicateDefault).WithContext(map[string]any{
			"family":   family,
			"existing": existing.name,
			"unit":     name,
		})
	}
	u := r.newUnitLocked(name, 1, nil, family, KindSimple)
	r.defaults[family] = u
	r.mu.Unlock()

	r.metrics.recordRegistration(u, 0)
	r.logger.Debug("registered default unit", "family", family, "unit", name)
	return u, nil
}

// Register creates a unit of basis's family such that 1 unit = factor × basis,
// and cascades the factor to every unit already related to basis.
//
// Derived units have no duplicate-name protection; each one is expected to
// be declared once, during family initialization.
func (r *Registry) Register(name string, factor float64, basis *Unit) (*Unit, error) {
	const op = "Registry.Register"

	if err := r.checkOwned(op, basis); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewInvalidArgumentError(op, errEmptyName).WithContext(map[string]any{
			"basis": basis.name,
		})
	}
	if basis.kind != KindSimple {
		return nil, NewInvalidArgumentError(op, errCompoundBasis).WithContext(map[string]any{
			"unit":  name,
			"basis": basis.name,
		})
	}
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, NewInvalidArgumentError(op, ErrInvalidFactor).WithContext(map[string]any{
			"unit":   name,
			"factor": factor,
		})
	}

	r.mu.Lock()
	u := r.newUnitLocked(name, factor, basis, basis.family, KindSimple)
	n := r.cascadeLocked(u, basis, factor)
	r.mu.Unlock()

	r.metrics.recordRegistration(u, n)
	r.logger.Debug("registered unit",
		"family", u.family,
		"unit", name,
		"basis", basis.name,
		"factor", factor,
		"cascaded", n)
	return u, nil
}

// RegisterPrefixed registers the unit p applied to basis, e.g. kilo and
// "m" give "km" with factor 1000.
func (r *Registry) RegisterPrefixed(p MetricPrefix, basis *Unit) (*Unit, error) {
	if basis == nil {
		return nil, NewInvalidArgumentError("Registry.RegisterPrefixed", ErrNilUnit)
	}
	return r.Register(p.Symbol()+basis.name, p.Factor(), basis)
}

func (r *Registry) newUnitLocked(name string, factor float64, basis *Unit, family string, kind Kind) *Unit {
	r.seq++
	u := &Unit{
		name:     name,
		factor:   factor,
		basis:    basis,
		family:   family,
		kind:     kind,
		seq:      r.seq,
		registry: r,
	}
	r.units = append(r.units, u)
	return u
}

// put records 1 from = f × to and returns the table of units related to to.
func (r *Registry) putLocked(from, to *Unit, f float64) map[*Unit]float64 {
	related := r.factors[to]
	if related == nil {
		related = make(map[*Unit]float64)
		r.factors[to] = related
	}
	related[from] = f
	return related
}

// cascadeLocked stores u against basis and derives u's factor to and from
// every other unit already related to basis. It returns the number of
// table entries written.
func (r *Registry) cascadeLocked(u, basis *Unit, f float64) int {
	r.putLocked(basis, u, 1/f)
	siblings := r.putLocked(u, basis, f)
	n := 2

	for v, fv := range siblings {
		if v == u {
			continue
		}
		r.putLocked(u, v, f/fv)
		r.putLocked(v, u, fv/f)
		n += 2
	}
	return n
}

// Factor returns f such that 1 from = f × to.
//
// Identical units give exactly 1. Otherwise the cascade table is consulted
// in both directions, and compound units resolve through their operands.
// When no factor is known the registry's UnrelatedPolicy applies: under
// UnrelatedIdentity (the default) Factor returns 1 and a nil error, which
// silently treats unrelated dimensions as interchangeable.
func (r *Registry) Factor(from, to *Unit) (float64, error) {
	const op = "Registry.Factor"

	if err := r.checkOwned(op, from); err != nil {
		return math.NaN(), err
	}
	if err := r.checkOwned(op, to); err != nil {
		return math.NaN(), err
	}

	if f, ok := r.resolve(from, to); ok {
		return f, nil
	}

	r.metrics.recordUnresolved(from, to, r.policy)
	if r.policy == UnrelatedError {
		return math.NaN(), NewUnresolvableError(op, ErrUnrelatedUnits).WithContext(map[string]any{
			"from": from.name,
			"to":   to.name,
		})
	}

	r.logger.Warn("no conversion between units, assuming 1:1",
		"from", from.name,
		"from_family", from.family,
		"to", to.name,
		"to_family", to.family)
	return 1, nil
}

// resolve is the single factor resolution function over every kind of unit.
func (r *Registry) resolve(from, to *Unit) (float64, bool) {
	if from == to {
		return 1, true
	}

	r.mu.RLock()
	f, ok := r.lookupLocked(from, to)
	r.mu.RUnlock()
	if ok {
		return f, true
	}

	if from.kind != to.kind || from.kind == KindSimple {
		return 0, false
	}

	left, ok := r.resolve(from.left, to.left)
	if !ok {
		return 0, false
	}
	right, ok := r.resolve(from.right, to.right)
	if !ok {
		return 0, false
	}

	if from.kind == KindRatio {
		return left / right, true
	}
	return left * right, true
}

func (r *Registry) lookupLocked(from, to *Unit) (float64, bool) {
	if related, ok := r.factors[to]; ok {
		if f, ok := related[from]; ok {
			return f, true
		}
	}
	if related, ok := r.factors[from]; ok {
		if f, ok := related[to]; ok {
			return 1 / f, true
		}
	}
	return 0, false
}

func (r *Registry) checkOwned(op string, u *Unit) error {
	if u == nil {
		return NewInvalidArgumentError(op, ErrNilUnit)
	}
	if u.registry != r {
		return NewInvalidArgumentError(op, ErrForeignUnit).WithContext(map[string]any{
			"unit": u.name,
		})
	}
	return nil
}

// Lookup returns the first registered unit named name.
func (r *Registry) Lookup(name string) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.units {
		if u.name == name {
			return u, true
		}
	}
	return nil, false
}

// DefaultUnit returns the default unit of family.
func (r *Registry) DefaultUnit(family string) (*Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.defaults[family]; ok {
		return u, nil
	}
	return nil, NewInvalidArgumentError("Registry.DefaultUnit", errDefaultMissing).WithContext(map[string]any{
		"family": family,
	})
}

// Units returns every unit in registration order, compound units included.
func (r *Registry) Units() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]*Unit, len(r.units))
	copy(units, r.units)
	return units
}

// WriteConversionTable writes one "1 <from> = <factor> * <to>" line for
// every entry of the factor table, in registration order. The output is
// meant for debugging and its format is not stable.
func (r *Registry) WriteConversionTable(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, to := range r.units {
		related := r.factors[to]
		if len(related) == 0 {
			continue
		}
		for _, from := range r.units {
			f, ok := related[from]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "1 %s = %s * %s\n",
				from.name, strconv.FormatFloat(f, 'g', -1, 64), to.name); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintConversionTable writes the conversion table to stdout.
func (r *Registry) PrintConversionTable() {
	_ = r.WriteConversionTable(os.Stdout)
}

// Factor returns the factor converting from into to, using from's registry.
func Factor(from, to *Unit) (float64, error) {
	if from == nil {
		return math.NaN(), NewInvalidArgumentError("Factor", ErrNilUnit)
	}
	return from.registry.Factor(from, to)
}
