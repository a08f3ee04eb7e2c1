package squircle

import "math"

// reduce folds angle into the first quadrant, returning the folded angle and
// the sign of the cosine there. The superellipse is symmetric across both
// axes, so its cosine is even and reflects across π/2 like the circular one:
// cos(−a) = cos(a), cos(2π−a) = cos(a), cos(π−a) = −cos(a).
func reduce(angle float64) (float64, float64) {
	angle = math.Mod(math.Abs(angle), 2*math.Pi)
	sign := 1.0
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	if angle > math.Pi/2 {
		angle = math.Pi - angle
		sign = -1
	}
	return angle, sign
}

// SuperCos evaluates the x coordinate of the unit superellipse
// |x|^e + |y|^e = 1 at the given angle.
func SuperCos(angle, exponent float64) float64 {
	a, sign := reduce(angle)
	t := math.Tan(a)
	return sign / math.Pow(1+math.Pow(t, exponent), 1/exponent)
}

// SuperSin evaluates the y coordinate of the unit superellipse at the given
// angle, via the quarter-turn identity sin(a) = cos(π/2 − a).
func SuperSin(angle, exponent float64) float64 {
	return SuperCos(math.Pi/2-angle, exponent)
}

// HybridCos evaluates the x coordinate of the unit anisotropic superellipse
// |x|^ex + |y|^ey = 1 at the given angle.
//
// There is no closed form; the first-quadrant value is the positive root x of
//
//	x^ex + (tan(angle)·x)^ey − 1 = 0
//
// found by a fixed budget of five Newton steps from x₀ = 1. The budget is an
// empirical choice, not a convergence tolerance. A NaN iterate (the tangent
// is singular at the y axis) falls back to 1, the boundary value on the x
// axis.
func HybridCos(angle float64, exp Exponent) float64 {
	a, sign := reduce(angle)
	te := math.Pow(math.Tan(a), exp.Y)
	x := 1.0
	for range 5 {
		f := math.Pow(x, exp.X) + te*math.Pow(x, exp.Y) - 1
		df := exp.X*math.Pow(x, exp.X-1) + exp.Y*te*math.Pow(x, exp.Y-1)
		x -= f / df
	}
	if math.IsNaN(x) {
		x = 1
	}
	return sign * x
}

// HybridSin evaluates the y coordinate of the unit anisotropic superellipse
// at the given angle. Transposing the curve swaps the roles of the two
// exponents, so sin(a, {ex, ey}) = cos(π/2 − a, {ey, ex}).
func HybridSin(angle float64, exp Exponent) float64 {
	return HybridCos(math.Pi/2-angle, exp.swap())
}
