// Package measure provides typed physical quantities with conversion between
// any two units of the same dimension.
//
// # Core Concepts
//
//   - Unit: a node of the conversion graph, declared against a basis unit
//     of its family with a scale factor
//   - Family: the units sharing one default (basis) unit, e.g. all distances
//   - Registry: the conversion graph; it owns units and their factors
//   - Scalar: a value in a unit
//   - Vector: an ordered pair of quantities
//
// # Cascading
//
// When a unit is registered, its factor to the basis is propagated to every
// unit the basis already knows about. Converting between any two units of
// a family is then a table lookup:
//
//	r := measure.NewRegistry()
//	m, _ := r.RegisterDefault("distance", "m")
//	ft, _ := r.Register("ft", 0.3048, m)
//	mi, _ := r.Register("mi", 5280, ft)
//	km, _ := r.Register("km", 1000, m)
//
//	f, _ := r.Factor(km, mi) // 0.621371...
//
// # Compound Units
//
// Ratio and Product build units such as km/hr from two operands. They are
// cached by operand identity, so repeated calls return the same *Unit:
//
//	sec, _ := r.RegisterDefault("time", "sec")
//	hr, _ := r.Register("hr", 3600, sec)
//	kmh, _ := r.Ratio(km, hr)
//	speed, _ := measure.NewScalar(100, kmh)
//
// # Unrelated Units
//
// The engine does not check dimensions. By default a conversion between
// units with no known relationship uses a factor of 1 and logs a warning.
// Use WithUnrelatedPolicy(UnrelatedError) to get an error instead.
//
// Domain quantity types built on this package live in the quantity
// sub-package; unit families can also be loaded from files with the
// catalog sub-package.
package measure
