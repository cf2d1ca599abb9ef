package fixed

// Complex is a pair of Q15 values on the complex plane.
//
// The same two numbers are read differently depending on the call site: a
// rectangular vector (x, y), an analytic sample (I, Q), a rotation result
// (cos, sin), or a spectrum bin (real, imaginary). Rather than aliasing
// memory, the semantic views are exposed as accessor methods over the one
// canonical pair.
type Complex struct {
	Re Q15
	Im Q15
}

// X returns the first component viewed as a rectangular x coordinate.
func (c Complex) X() Q15 { return c.Re }

// Y returns the second component viewed as a rectangular y coordinate.
func (c Complex) Y() Q15 { return c.Im }

// I returns the first component viewed as the in-phase arm of an I/Q pair.
func (c Complex) I() Q15 { return c.Re }

// Q returns the second component viewed as the quadrature arm of an I/Q pair.
func (c Complex) Q() Q15 { return c.Im }

// Cos returns the first component viewed as a cosine, the convention for
// rotation results seeded with a unit vector.
func (c Complex) Cos() Q15 { return c.Re }

// Sin returns the second component viewed as a sine.
func (c Complex) Sin() Q15 { return c.Im }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Neg returns the vector rotated by a half turn.
func (c Complex) Neg() Complex {
	return Complex{Re: -c.Re, Im: -c.Im}
}
