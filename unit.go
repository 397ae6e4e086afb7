package measure

// Kind distinguishes simple units from compound ones.
type Kind int

const (
	// KindSimple is a unit declared directly in a family.
	KindSimple Kind = iota

	// KindRatio is a numerator/denominator compound unit, such as km/hr.
	KindRatio

	// KindProduct is a first·second compound unit, such as g·ml.
	KindProduct
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindRatio:
		return "ratio"
	case KindProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Unit is a node of a Registry's conversion graph. Units are created by a
// Registry and never change afterwards; two units are the same unit only
// if they are the same pointer.
type Unit struct {
	name   string
	factor float64
	basis  *Unit
	family string
	kind   Kind

	// left and right are the operands of a compound unit: numerator and
	// denominator for KindRatio, first and second for KindProduct.
	left, right *Unit

	seq      uint64
	registry *Registry
}

// Name returns the unit's symbol, e.g. "km" or "km/hr".
func (u *Unit) Name() string {
	return u.name
}

// Factor returns the scale of the unit relative to its basis. A family's
// default unit has factor 1.
func (u *Unit) Factor() float64 {
	return u.factor
}

// Basis returns the unit this unit was declared against, or nil for a
// family's default unit.
func (u *Unit) Basis() *Unit {
	return u.basis
}

// Family returns the name of the family the unit belongs to. Compound
// units report a family derived from their operands, e.g. "distance/time".
func (u *Unit) Family() string {
	return u.family
}

// Kind returns whether the unit is simple, a ratio or a product.
func (u *Unit) Kind() Kind {
	return u.kind
}

// Operands returns the two operands of a compound unit. Both are nil for
// simple units.
func (u *Unit) Operands() (*Unit, *Unit) {
	return u.left, u.right
}

// IsDefault reports whether the unit is its family's basis-less default.
func (u *Unit) IsDefault() bool {
	return u.kind == KindSimple && u.basis == nil
}

// Registry returns the registry the unit was created in.
func (u *Unit) Registry() *Registry {
	return u.registry
}

// String returns the unit name.
func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	return u.name
}
