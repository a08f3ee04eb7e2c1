package squircle

import (
	"math"
	"testing"
)

func TestSVGLines(t *testing.T) {
	var path Path
	path.MoveTo(Pt(-1, -1))
	path.LineTo(Pt(1, -1))
	path.LineTo(Pt(1, 1))
	path.LineTo(Pt(-1, 1))
	path.ClosePath()
	want := "M-1 -1 L1 -1 L1 1 L-1 1 Z"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGArc(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, -1))
	path.ArcTo(Pt(0, 1), Vec(1, 1), 0, true)
	path.ArcTo(Pt(0, -1), Vec(1, 1), 0, true)
	path.ClosePath()
	want := "M0 -1 A1 1 0 1 1 0 1 A1 1 0 1 1 0 -1 Z"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGArcRotationDegrees(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, 0))
	path.ArcTo(Pt(2, 0), Vec(2, 1), math.Pi/6, false)
	want := "M0 0 A2 1 30.000000000000004 1 0 2 0"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGMaxPrecision(t *testing.T) {
	var path Path
	path.MoveTo(Pt(1.0/3.0, 0.25))
	path.LineTo(Pt(2, 0.5))
	want := "M0.333 0.25 L2 0.5"
	got := path.SVG(SVGOptions{MaxPrecision: 3})
	diff(t, want, got)
}

func TestPathTranslate(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, -1))
	path.ArcTo(Pt(0, 1), Vec(1, 1), 0, true)
	path.LineTo(Pt(1, 1))
	path.ClosePath()

	got := path.Translate(Vec(10, 20))
	want := Path{
		MoveTo(Pt(10, 19)),
		ArcTo(Pt(10, 21), Vec(1, 1), 0, true),
		LineTo(Pt(11, 21)),
		ClosePath(),
	}
	diff(t, want, got)
}

func TestPathNonFinite(t *testing.T) {
	path := Path{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), ClosePath()}
	if path.IsInf() || path.IsNaN() {
		t.Error("finite path misreported as non-finite")
	}
	inf := Path{MoveTo(Pt(0, 0)), LineTo(Pt(math.Inf(1), 0))}
	if !inf.IsInf() {
		t.Error("expected IsInf to report an infinite coordinate")
	}
	nan := Path{MoveTo(Pt(0, 0)), ArcTo(Pt(1, 0), Vec(math.NaN(), 1), 0, true)}
	if !nan.IsNaN() {
		t.Error("expected IsNaN to report NaN radii")
	}
}

func TestPathVertices(t *testing.T) {
	path := Path{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		ArcTo(Pt(1, 1), Vec(1, 1), 0, true),
		ClosePath(),
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, path.Vertices())
}
