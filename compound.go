package measure

// Ratio returns the numerator/denominator unit, e.g. km/hr. Units are
// memoized by operand identity: calling Ratio twice with the same operands
// returns the same *Unit, also when the calls race.
//
// The unit's factor is numerator.Factor()/denominator.Factor() and Basis
// reports the numerator, but the unit is not entered in the numerator's
// family: Factor resolves a ratio only against another ratio, dividing the
// numerator factor by the denominator factor. A ratio against a simple unit
// is unrelated and follows the registry's UnrelatedPolicy.
func (r *Registry) Ratio(numerator, denominator *Unit) (*Unit, error) {
	return r.compound("Registry.Ratio", KindRatio, r.ratios, numerator, denominator)
}

// Product returns the first·second unit, e.g. g·ml, memoized like Ratio.
//
// The unit's factor is first.Factor()/second.Factor(), mirroring Ratio.
// Conversions between two product units multiply the operand factors. Like
// a ratio, a product is unrelated to every simple unit.
func (r *Registry) Product(first, second *Unit) (*Unit, error) {
	return r.compound("Registry.Product", KindProduct, r.products, first, second)
}

func (r *Registry) compound(op string, kind Kind, cache map[operands]*Unit, left, right *Unit) (*Unit, error) {
	if err := r.checkOwned(op, left); err != nil {
		return nil, err
	}
	if err := r.checkOwned(op, right); err != nil {
		return nil, err
	}

	key := operands{left: left, right: right}

	r.compoundMu.RLock()
	u, ok := cache[key]
	r.compoundMu.RUnlock()
	if ok {
		r.metrics.recordCompound(kind, true)
		return u, nil
	}

	r.compoundMu.Lock()
	if u, ok = cache[key]; ok {
		r.compoundMu.Unlock()
		r.metrics.recordCompound(kind, true)
		return u, nil
	}

	sep := "/"
	if kind == KindProduct {
		sep = "·"
	}

	r.mu.Lock()
	u = r.newUnitLocked(left.name+sep+right.name, left.factor/right.factor, left, left.family+sep+right.family, kind)
	u.left, u.right = left, right
	r.mu.Unlock()

	cache[key] = u
	r.compoundMu.Unlock()

	r.metrics.recordCompound(kind, false)
	r.metrics.recordRegistration(u, 0)
	r.logger.Debug("created compound unit", "kind", kind.String(), "unit", u.name)
	return u, nil
}

// Ratio returns numerator/denominator from numerator's registry.
func Ratio(numerator, denominator *Unit) (*Unit, error) {
	if numerator == nil {
		return nil, NewInvalidArgumentError("Ratio", ErrNilUnit)
	}
	return numerator.registry.Ratio(numerator, denominator)
}

// Product returns first·second from first's registry.
func Product(first, second *Unit) (*Unit, error) {
	if first == nil {
		return nil, NewInvalidArgumentError("Product", ErrNilUnit)
	}
	return first.registry.Product(first, second)
}
