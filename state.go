package waveguide

import (
	"fmt"
	"math"
)

// DefaultTolerance is the default curve tolerance, in microns. It bounds the
// distance between an arc and the chords used to approximate it, and is the
// default tolerance for continuity checks.
const DefaultTolerance = 0.001

// State is the trailing position and heading of a path under construction.
//
// Heading is measured in radians from the positive x-axis. Headings are
// compared modulo 2π.
type State struct {
	Point   Point
	Heading float64
}

func (s State) String() string {
	return fmt.Sprintf("%s@%g", s.Point, s.Heading)
}

// Direction returns the unit vector pointing along the state's heading.
func (s State) Direction() Vec2 {
	return VecFromAngle(s.Heading)
}

// Near reports whether both the positions and the headings of s and o agree
// within tolerance.
func (s State) Near(o State, tolerance float64) bool {
	return s.Point.Near(o.Point, tolerance) && SameHeading(s.Heading, o.Heading, tolerance)
}

// Transform maps the state through aff. aff should be a rigid motion,
// possibly including a reflection.
func (s State) Transform(aff Affine) State {
	return State{
		Point:   s.Point.Transform(aff),
		Heading: aff.TransformAngle(s.Heading),
	}
}

// NormalizeAngle maps th into [0, 2π).
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	// math.Mod of a tiny negative number can round to exactly 2π.
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}

// AngleDiff returns a−b reduced to (−π, π].
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// SameHeading reports whether the headings a and b differ by no more than
// tolerance radians, modulo 2π.
func SameHeading(a, b, tolerance float64) bool {
	return math.Abs(AngleDiff(a, b)) <= tolerance
}

// maxArcStep returns the largest angular step whose chord stays within
// tolerance of a circle of the given radius.
func maxArcStep(radius, tolerance float64) float64 {
	if tolerance >= radius {
		return math.Pi / 2
	}
	return 2 * math.Acos(1-tolerance/radius)
}

// arcSteps returns the number of chords needed to approximate an arc of
// the given radius and sweep.
func arcSteps(radius, sweep, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	n := math.Ceil(math.Abs(sweep) / maxArcStep(math.Abs(radius), tolerance))
	return max(int(n), 1)
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
