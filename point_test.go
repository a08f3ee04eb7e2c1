package squircle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(2, -1), Pt(3, 1).Sub(Pt(1, 2)))
	diff(t, Pt(4, 3), Pt(3, 1).Translate(Vec(1, 2)))
	diff(t, Pt(2, 1.5), Pt(1, 1).Midpoint(Pt(3, 2)))
	diff(t, Vec(3, 1), Vec(1, 2).Add(Vec(2, -1)))
	diff(t, Vec(-1, 3), Vec(1, 2).Sub(Vec(2, -1)))
	if d := Pt(1, 1).Distance(Pt(4, 5)); d != 5 {
		t.Errorf("Distance = %v, expected 5", d)
	}
	x, y := Pt(3, 1).Splat()
	diff(t, Vec(3, 1), Vec(x, y))
}

func TestRotateQuarterTurns(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-15)

	// Clockwise-positive in y-down coordinates: the positive x axis rotates
	// onto the positive (downward) y axis after a quarter turn.
	diff(t, Pt(0, 1), Pt(1, 0).Rotate(math.Pi/2), approx)
	diff(t, Pt(-1, 0), Pt(1, 0).Rotate(math.Pi), approx)
	diff(t, Pt(0, -1), Pt(1, 0).Rotate(-math.Pi/2), approx)
	diff(t, Vec(1, 0), Vec(0, -1).Rotate(math.Pi/2), approx)
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec(3, 4)
	for _, angle := range []float64{0.1, 1, 2.5, -0.7} {
		if got := v.Rotate(angle).Hypot(); math.Abs(got-5) > 1e-12 {
			t.Errorf("rotation by %v changed length to %v", angle, got)
		}
	}
}

func TestNonFinitePredicates(t *testing.T) {
	if !Pt(math.Inf(1), 0).IsInf() {
		t.Error("expected IsInf to report an infinite coordinate")
	}
	if !Vec(0, math.NaN()).IsNaN() {
		t.Error("expected IsNaN to report a NaN coordinate")
	}
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point misreported as non-finite")
	}
}
