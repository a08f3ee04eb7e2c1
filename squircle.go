package squircle

import (
	"iter"
	"math"
	"slices"
)

// DefaultAccuracy is the initial package-wide number of boundary samples used
// for non-degenerate curves.
const DefaultAccuracy = 101

var accuracy = DefaultAccuracy

// SetAccuracy sets the package-wide number of boundary samples used by
// subsequent path generation. The value is not validated; non-positive values
// degenerate the output, and values below 4 leave the anisotropic
// low-exponent walk without any samples.
//
// The setting is read by every generation call. Hosts that mutate it
// concurrently with in-flight generation must synchronize externally; for
// global-free use, set the Accuracy field on the shape instead.
func SetAccuracy(n int) {
	accuracy = n
}

// Accuracy returns the current package-wide sample count.
func Accuracy() int {
	return accuracy
}

// Shape describes closed shapes that can produce their outline as a series of
// path elements.
type Shape interface {
	// BoundingBox returns a rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape as "move to", "line to", "arc to", and "close path" commands.
	PathElements() iter.Seq[PathElement]

	Path() Path
}

// Squircle is a superellipse-family shape: the closed curve
// |x/(w/2)|^ex + |y/(h/2)|^ey = 1, rotated and anchored at a center point.
type Squircle struct {
	Exponent Exponent

	// Size is the full width and height of the shape's bounding box.
	Size Vec2

	Center Point

	// Rotation is in radians, clockwise in a y-down coordinate system.
	Rotation float64

	// CCW selects counter-clockwise winding. The zero value, and the
	// default, is clockwise.
	CCW bool

	// Accuracy overrides the package-wide sample count when positive.
	Accuracy int
}

var _ Shape = Squircle{}

// NewSquircle returns a squircle with the given exponent and the default
// parameters: a unit-square size centered at (0.5, 0.5), so the shape's
// bounding box has its top-left corner at the origin, no rotation, and
// clockwise winding.
func NewSquircle(exp Exponent) Squircle {
	return Squircle{
		Exponent: exp,
		Size:     Vec(1, 1),
		Center:   Pt(0.5, 0.5),
	}
}

// WithSize returns a copy of the shape with the given size and the center
// re-derived as half of it. Use [Squircle.WithCenter] afterwards to anchor
// the shape elsewhere.
func (s Squircle) WithSize(size Vec2) Squircle {
	s.Size = size
	s.Center = Pt(0, 0).Midpoint(Pt(size.X, size.Y))
	return s
}

// WithCenter returns a copy of the shape anchored at center.
func (s Squircle) WithCenter(center Point) Squircle {
	s.Center = center
	return s
}

// WithRotation returns a copy of the shape rotated by rotation radians,
// clockwise in a y-down coordinate system.
func (s Squircle) WithRotation(rotation float64) Squircle {
	s.Rotation = rotation
	return s
}

// CounterClockwise returns a copy of the shape with counter-clockwise
// winding.
func (s Squircle) CounterClockwise() Squircle {
	s.CCW = true
	return s
}

func (s Squircle) accuracy() int {
	if s.Accuracy > 0 {
		return s.Accuracy
	}
	return accuracy
}

// place rotates an offset from the shape's center into place and anchors it
// at the center.
func (s Squircle) place(v Vec2) Point {
	return s.Center.Translate(v.Rotate(s.Rotation))
}

// Corners returns the shape's bounding-box corners in winding order, starting
// at the top-left corner for clockwise winding. Reversing the winding reverses
// the sequence in place, which changes the starting anchor but not the vertex
// set.
func (s Squircle) Corners() [4]Point {
	w, h := s.Size.Mul(0.5).Splat()
	pts := [4]Point{
		s.place(Vec(-w, -h)),
		s.place(Vec(w, -h)),
		s.place(Vec(w, h)),
		s.place(Vec(-w, h)),
	}
	if s.CCW {
		slices.Reverse(pts[:])
	}
	return pts
}

// Midpoints returns the shape's edge midpoints in winding order, starting at
// the top edge for clockwise winding.
func (s Squircle) Midpoints() [4]Point {
	w, h := s.Size.Mul(0.5).Splat()
	pts := [4]Point{
		s.place(Vec(0, -h)),
		s.place(Vec(w, 0)),
		s.place(Vec(0, h)),
		s.place(Vec(-w, 0)),
	}
	if s.CCW {
		slices.Reverse(pts[:])
	}
	return pts
}

// BoundingBox returns the axis-aligned box of the rotated bounding-box
// corners. It encloses the curve for any exponent; for finite exponents other
// than the rectangle case the bound is conservative.
func (s Squircle) BoundingBox() Rect {
	c := s.Corners()
	return NewRectFromPoints(c[0], c[1]).Union(NewRectFromPoints(c[2], c[3]))
}

// PathElements implements Shape.
func (s Squircle) PathElements() iter.Seq[PathElement] {
	return s.Path().Elements()
}

// SVG generates the outline and renders it as SVG path data, ready for a
// <path> element's d attribute.
func (s Squircle) SVG(opts SVGOptions) string {
	return s.Path().SVG(opts)
}

// Path generates the closed outline of the shape.
//
// Generation never fails: degenerate or ill-conditioned parameters produce
// best-effort geometry. The returned path always consists of a single move,
// a run of line or arc elements, and a close.
func (s Squircle) Path() Path {
	exp := s.Exponent
	if exp.IsInf() || exp.IsNaN() {
		// The limit shape is the bounding rectangle, and NaN components
		// cannot do better.
		c := s.Corners()
		return polygon(c[:])
	}
	if exp.isotropic() {
		return s.isotropicPath(exp.X)
	}
	if exp.X >= 1.5 && exp.Y >= 1.5 {
		return s.sampledPath(func(angle float64) Vec2 {
			return Vec(
				0.5*s.Size.X*HybridCos(angle, exp),
				-0.5*s.Size.Y*HybridSin(angle, exp),
			)
		})
	}
	return s.quadrantPath()
}

func (s Squircle) isotropicPath(e float64) Path {
	switch {
	case e == 1:
		c := s.Midpoints()
		return polygon(c[:])
	case e == 2:
		return s.ellipsePath()
	default:
		return s.sampledPath(func(angle float64) Vec2 {
			return Vec(
				0.5*s.Size.X*SuperCos(angle, e),
				-0.5*s.Size.Y*SuperSin(angle, e),
			)
		})
	}
}

func polygon(pts []Point) Path {
	path := Path{MoveTo(pts[0])}
	for _, pt := range pts[1:] {
		path.LineTo(pt)
	}
	path.ClosePath()
	return path
}

// ellipsePath emits the exponent-2 ellipse exactly, as two half arcs between
// opposite edge midpoints with the winding as the sweep direction.
func (s Squircle) ellipsePath() Path {
	m := s.Midpoints()
	radii := s.Size.Mul(0.5)
	sweep := !s.CCW
	var path Path
	path.MoveTo(m[0])
	path.ArcTo(m[2], radii, s.Rotation, sweep)
	path.ArcTo(m[0], radii, s.Rotation, sweep)
	path.ClosePath()
	return path
}

// sampledPath samples a full turn of the angular parametrization. The path
// starts at the first resolved edge midpoint and the remaining accuracy−1
// samples sweep the turn in the winding direction, never revisiting the
// start.
func (s Squircle) sampledPath(boundary func(angle float64) Vec2) Path {
	acc := s.accuracy()
	dir := -1.0 // clockwise; angles decrease from π/2
	if s.CCW {
		dir = 1.0
	}
	step := 2 * math.Pi / float64(acc)
	path := Path{MoveTo(s.Midpoints()[0])}
	for i := 1; i < acc; i++ {
		angle := math.Pi/2 + dir*float64(i)*step
		path.LineTo(s.place(boundary(angle)))
	}
	path.ClosePath()
	return path
}

// quadrantPath walks the boundary in explicit x, y form, one mirrored
// quadrant at a time. When an exponent drops below 1.5 the angular
// parametrization's derivative blows up near the axes; the explicit form
// stays well-conditioned as long as the x exponent is the larger one, so the
// walk normalizes to that case by transposing exponent and size and adding a
// quarter turn of rotation, which leaves the rendered shape unchanged.
//
// Sampling is approximately uniform in x rather than in angle, which puts
// more points near the corners than mid-edge. For exponents near 1 that is
// the useful trade-off: uniform angles would cluster samples along the nearly
// flat edges.
func (s Squircle) quadrantPath() Path {
	exp := s.Exponent
	size := s.Size
	rotation := s.Rotation
	if exp.X < exp.Y {
		exp = exp.swap()
		size = size.Swap()
		rotation += math.Pi / 2
	}
	cws := 1.0
	if s.CCW {
		cws = -1.0
	}

	acc := s.accuracy()
	n := acc/4 - 1
	if n < 1 {
		// Too few samples to trace anything, but the output must remain a
		// valid closed path.
		return Path{MoveTo(s.Center), ClosePath()}
	}
	step := 4 / float64(acc)
	rx, ry := size.Mul(0.5).Splat()

	// Boundary offsets for the first half turn, top edge to bottom edge
	// along the +x side. The second half turn is the mirror image through
	// the center.
	half := make([]Vec2, 0, 2*n)
	for k := 1; k <= n; k++ {
		x := float64(k) * step
		y := math.Pow(1-math.Pow(x, exp.X), 1/exp.Y)
		half = append(half, Vec(cws*x*rx, -y*ry))
	}
	for k := n - 1; k >= 0; k-- {
		v := half[k]
		half = append(half, Vec(v.X, -v.Y))
	}

	pts := make([]Point, 0, 4*n)
	for _, v := range half {
		pts = append(pts, s.Center.Translate(v.Rotate(rotation)))
	}
	for _, v := range half {
		pts = append(pts, s.Center.Translate(v.Negate().Rotate(rotation)))
	}
	return polygon(pts)
}
