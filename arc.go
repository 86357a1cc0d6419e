package waveguide

import "math"

// Arc is a circular arc about an absolute center. The arc runs from
// StartAngle to EndAngle; it is anti-clockwise if EndAngle > StartAngle and
// clockwise otherwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (Arc) primitive() {}

// Sweep returns the signed angle covered by the arc.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

func (a Arc) Validate() error {
	if !a.Center.isFinite() || !isFinite(a.Radius, a.StartAngle, a.EndAngle) {
		return parameterError("arc has non-finite parameters")
	}
	if a.Radius <= 0 {
		return parameterError("arc radius %g must be positive", a.Radius)
	}
	if a.Sweep() == 0 {
		return rangeError("arc sweeps no angle")
	}
	return nil
}

// PointAt returns the point at angle th on the arc's circle.
func (a Arc) PointAt(th float64) Point {
	return pointOnCircle(a.Center, a.Radius, th)
}

// headingAt returns the direction of travel at angle th.
func (a Arc) headingAt(th float64) float64 {
	if a.Sweep() < 0 {
		return th - math.Pi/2
	}
	return th + math.Pi/2
}

func (a Arc) Start() State {
	return State{
		Point:   a.PointAt(a.StartAngle),
		Heading: a.headingAt(a.StartAngle),
	}
}

func (a Arc) End() State {
	return State{
		Point:   a.PointAt(a.EndAngle),
		Heading: a.headingAt(a.EndAngle),
	}
}

func (a Arc) Length() float64 {
	return a.Radius * math.Abs(a.Sweep())
}

// Outline returns the outline of the arc extruded to width. The outer edge is
// traced from the start to the end, followed by the inner edge back to the
// start. width must be smaller than twice the radius.
func (a Arc) Outline(width, tolerance float64) Polygon {
	outer := a.Radius + width/2
	inner := a.Radius - width/2
	n := arcSteps(outer, a.Sweep(), tolerance)
	step := a.Sweep() / float64(n)

	poly := make(Polygon, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		poly = append(poly, pointOnCircle(a.Center, outer, a.StartAngle+float64(i)*step))
	}
	for i := n; i >= 0; i-- {
		poly = append(poly, pointOnCircle(a.Center, inner, a.StartAngle+float64(i)*step))
	}
	return poly
}

func (a Arc) Transform(aff Affine) Primitive {
	return a.transform(aff)
}

func (a Arc) transform(aff Affine) Arc {
	sweep := a.Sweep()
	if aff.Flips() {
		sweep = -sweep
	}
	start := aff.TransformAngle(a.StartAngle)
	return Arc{
		Center:     a.Center.Transform(aff),
		Radius:     a.Radius,
		StartAngle: start,
		EndAngle:   start + sweep,
	}
}

func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.PointAt(a.StartAngle), a.PointAt(a.EndAngle))
	lo, hi := min(a.StartAngle, a.EndAngle), max(a.StartAngle, a.EndAngle)
	// Include every axis extremum the arc passes through.
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		bbox = bbox.UnionPoint(a.PointAt(k * math.Pi / 2))
	}
	return bbox
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
