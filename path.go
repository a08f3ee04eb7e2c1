package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a path.
//
// A valid path has MoveTo at the beginning of each subpath. Arc elements
// follow the SVG endpoint parametrization: the arc runs from the current
// location to P0 on an ellipse with the given radii, rotated by XRotation
// radians. Large selects the longer of the two candidate arcs and Sweep
// selects the clockwise one (in a y-down coordinate system).
type PathElement struct {
	Kind      PathElementKind
	P0        Point
	Radii     Vec2
	XRotation float64
	Large     bool
	Sweep     bool
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %s, %g, %t, %t)", el.P0, el.Radii, el.XRotation, el.Large, el.Sweep)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Translate(v Vec2) PathElement {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		el.P0 = el.P0.Translate(v)
		return el
	default:
		return el
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.Radii.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.Radii.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none
// exists. It exists for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ArcTo(pt Point, radii Vec2, xRotation float64, sweep bool) PathElement {
	return PathElement{
		Kind:      ArcToKind,
		P0:        pt,
		Radii:     radii,
		XRotation: xRotation,
		Large:     true,
		Sweep:     sweep,
	}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of path elements describing one or more subpaths.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ArcTo pushes an "arc to" element onto the path.
func (p *Path) ArcTo(pt Point, radii Vec2, xRotation float64, sweep bool) {
	p.Push(ArcTo(pt, radii, xRotation, sweep))
}

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Translate returns a new path moved by v.
func (p Path) Translate(v Vec2) Path {
	els := make(Path, len(p))
	for i := range p {
		els[i] = p[i].Translate(v)
	}
	return els
}

// Vertices returns the end points of the path's elements, in path order.
// Close elements contribute no vertex.
func (p Path) Vertices() []Point {
	pts := make([]Point, 0, len(p))
	for i := range p {
		if pt, ok := p[i].EndPoint(); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

func (p Path) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Coordinates are written as space-separated "x y" pairs. Arc elements become
// "A rx ry rot large sweep x y" commands with the x-axis rotation converted to
// degrees.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimRight(s, ".")
		}
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			x, y := el.P0.Splat()
			writef("M%s %s", format(x), format(y))
		case LineToKind:
			x, y := el.P0.Splat()
			writef("L%s %s", format(x), format(y))
		case ArcToKind:
			x, y := el.P0.Splat()
			rx, ry := el.Radii.Splat()
			writef("A%s %s %s %s %s %s %s",
				format(rx), format(ry),
				format(el.XRotation*(180/math.Pi)),
				flag(el.Large), flag(el.Sweep),
				format(x), format(y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
