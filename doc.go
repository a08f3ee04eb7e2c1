// Package squircle generates vector-path outlines for squircles:
// superellipse-family shapes parameterized by an exponent that interpolates
// continuously between a diamond, a circle, a square, and the rounded-corner
// shapes in between.
//
// # Shapes
//
// The central type is [Squircle], which describes a superellipse by its
// exponent, bounding-box size, center, rotation, and winding direction.
// [Squircle.Path] produces a closed [Path] of move, line, and elliptical-arc
// elements, and [Path.SVG] renders it as an SVG path-data string suitable for
// a <path> element's d attribute.
//
// The exponent is an [Exponent] pair. [Iso] builds the classic superellipse
// |x/a|^e + |y/b|^e = 1 with a single shared exponent; [Aniso] builds the
// "hybridial" variant with independent exponents per axis, so a shape can have
// flat top edges and pointed sides at the same time. An infinite isotropic
// exponent degenerates to the bounding rectangle, exponent 1 to the diamond of
// edge midpoints, and exponent 2 to an exact ellipse emitted as two arc
// commands.
//
// Non-degenerate curves are polygonal approximations. The number of boundary
// samples is controlled by the package-wide accuracy setting (see
// [SetAccuracy]) or per shape via the Accuracy field.
//
// # Coordinate system
//
// All coordinates are y-down, as is usual for 2D graphics: the first corner of
// an unrotated shape is its top left, and positive rotation is clockwise.
//
// # Evaluation
//
// Isotropic boundaries have the closed form evaluated by [SuperCos] and
// [SuperSin]. Anisotropic boundaries have no closed form; [HybridCos] finds
// the boundary coordinate as the positive root of a two-exponent equation
// using a fixed budget of Newton steps. For anisotropic exponents below 1.5
// the angular parametrization is ill-conditioned near the axes, and the
// generator instead walks the curve quadrant by quadrant in explicit x, y
// form.
package squircle
