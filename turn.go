package waveguide

import "math"

// Turn is a bend of the given radius, starting at From and rotating the
// heading by Delta radians. Positive values of Delta turn left
// (anti-clockwise), negative values turn right.
type Turn struct {
	From   State
	Radius float64
	Delta  float64
}

func (Turn) primitive() {}

func (t Turn) Validate() error {
	if !t.From.Point.isFinite() || !isFinite(t.From.Heading, t.Radius, t.Delta) {
		return parameterError("turn has non-finite parameters")
	}
	if t.Radius <= 0 {
		return parameterError("turn radius %g must be positive", t.Radius)
	}
	if t.Delta == 0 {
		return rangeError("turn by zero angle")
	}
	return nil
}

// Arc returns the absolute arc equivalent to the turn.
func (t Turn) Arc() Arc {
	side := 1.0
	if t.Delta < 0 {
		side = -1.0
	}
	center := t.From.Point.Translate(VecFromAngle(t.From.Heading + side*math.Pi/2).Mul(t.Radius))
	start := t.From.Heading - side*math.Pi/2
	return Arc{
		Center:     center,
		Radius:     t.Radius,
		StartAngle: start,
		EndAngle:   start + t.Delta,
	}
}

func (t Turn) Start() State {
	return t.From
}

func (t Turn) End() State {
	return State{
		Point:   t.Arc().End().Point,
		Heading: t.From.Heading + t.Delta,
	}
}

func (t Turn) Length() float64 {
	return t.Radius * math.Abs(t.Delta)
}

func (t Turn) Outline(width, tolerance float64) Polygon {
	return t.Arc().Outline(width, tolerance)
}

func (t Turn) BoundingBox() Rect {
	return t.Arc().BoundingBox()
}

func (t Turn) Transform(aff Affine) Primitive {
	delta := t.Delta
	if aff.Flips() {
		delta = -delta
	}
	return Turn{
		From:   t.From.Transform(aff),
		Radius: t.Radius,
		Delta:  delta,
	}
}
