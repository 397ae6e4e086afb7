package measure

// Vector is an ordered pair of quantities, such as a heading and a speed.
// A component holding the zero Scalar is absent.
type Vector[I, J Quantity] struct {
	I I
	J J
}

// NewVector returns the vector (i, j).
func NewVector[I, J Quantity](i I, j J) Vector[I, J] {
	return Vector[I, J]{I: i, J: j}
}

// Equal reports whether both components are equal. Two absent components
// are equal; an absent and a present one are not.
func (v Vector[I, J]) Equal(o Vector[I, J]) bool {
	return v.I.AsScalar().Equal(o.I.AsScalar()) && v.J.AsScalar().Equal(o.J.AsScalar())
}

// Hash combines the hashes of the present components.
func (v Vector[I, J]) Hash() uint64 {
	h := uint64(1)
	if i := v.I.AsScalar(); !i.IsZero() {
		h = 31*h + i.Hash()
	}
	if j := v.J.AsScalar(); !j.IsZero() {
		h = 31*h + j.Hash()
	}
	return h
}

// String returns "(i, j)".
func (v Vector[I, J]) String() string {
	return "(" + v.I.AsScalar().String() + ", " + v.J.AsScalar().String() + ")"
}
