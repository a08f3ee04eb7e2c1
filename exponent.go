package squircle

import "math"

// Exponent is the superellipse exponent pair. The x and y components apply to
// their respective axes; a pair with equal components is exactly the classic
// isotropic superellipse with that single exponent, and is evaluated as such.
//
// Exponents interpolate the shape family: values approaching +Inf give the
// bounding rectangle, 2 the ellipse, 1 the diamond, and values below 1
// increasingly pinched star-like curves. Components are expected to be ≥ 0;
// out-of-range values produce best-effort geometry, never an error.
type Exponent struct {
	X float64
	Y float64
}

// Iso returns the isotropic exponent e, shared by both axes.
func Iso(e float64) Exponent {
	return Exponent{X: e, Y: e}
}

// Aniso returns the anisotropic ("hybridial") exponent with independent
// per-axis values. Aniso(e, e) is equivalent to Iso(e).
func Aniso(ex, ey float64) Exponent {
	return Exponent{X: ex, Y: ey}
}

// swap returns the exponent with its components transposed.
func (e Exponent) swap() Exponent {
	return Exponent{X: e.Y, Y: e.X}
}

// isotropic reports whether both axes share one exponent.
func (e Exponent) isotropic() bool {
	return e.X == e.Y
}

// IsInf reports whether at least one component is infinite.
func (e Exponent) IsInf() bool {
	return math.IsInf(e.X, 0) || math.IsInf(e.Y, 0)
}

// IsNaN reports whether at least one component is NaN.
func (e Exponent) IsNaN() bool {
	return math.IsNaN(e.X) || math.IsNaN(e.Y)
}
