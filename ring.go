package waveguide

import "math"

// Ring is an annulus, used as the reference outline of a ring resonator.
type Ring struct {
	Center      Point
	InnerRadius float64
	OuterRadius float64
}

// NewRing returns the ring of the given center-line radius and width.
func NewRing(center Point, radius, width float64) Ring {
	return Ring{
		Center:      center,
		InnerRadius: radius - width/2,
		OuterRadius: radius + width/2,
	}
}

func (r Ring) Validate() error {
	if !r.Center.isFinite() || !isFinite(r.InnerRadius, r.OuterRadius) {
		return parameterError("ring has non-finite parameters")
	}
	if r.InnerRadius < 0 {
		return parameterError("ring inner radius %g must not be negative", r.InnerRadius)
	}
	if r.OuterRadius <= r.InnerRadius {
		return parameterError("ring outer radius %g must exceed inner radius %g", r.OuterRadius, r.InnerRadius)
	}
	return nil
}

// Polygon returns the outline of the ring as a single polygon. The outer
// circle is traced anti-clockwise, then the inner circle clockwise; the two
// are joined along the positive x-axis. If the inner radius is zero, the
// polygon is a disk.
func (r Ring) Polygon(tolerance float64) Polygon {
	n := max(arcSteps(r.OuterRadius, 2*math.Pi, tolerance), 8)
	step := 2 * math.Pi / float64(n)
	poly := make(Polygon, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		poly = append(poly, pointOnCircle(r.Center, r.OuterRadius, float64(i%n)*step))
	}
	if r.InnerRadius == 0 {
		return poly[:n]
	}
	for i := n; i >= 0; i-- {
		poly = append(poly, pointOnCircle(r.Center, r.InnerRadius, float64(i%n)*step))
	}
	return poly
}

func (r Ring) Area() float64 {
	return math.Pi * (r.OuterRadius*r.OuterRadius - r.InnerRadius*r.InnerRadius)
}

func (r Ring) BoundingBox() Rect {
	x := r.Center.X
	y := r.Center.Y
	return Rect{
		X0: x - r.OuterRadius,
		Y0: y - r.OuterRadius,
		X1: x + r.OuterRadius,
		Y1: y + r.OuterRadius,
	}
}

// Contains reports whether pt lies on the ring, boundaries included.
func (r Ring) Contains(pt Point) bool {
	d2 := pt.Sub(r.Center).Hypot2()
	return d2 >= r.InnerRadius*r.InnerRadius && d2 <= r.OuterRadius*r.OuterRadius
}
