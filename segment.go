package waveguide

// Segment is a straight run of the given length, starting at From and
// pointing in Direction.
type Segment struct {
	From      Point
	Direction float64
	Len       float64
}

func (Segment) primitive() {}

func (s Segment) Validate() error {
	if !s.From.isFinite() || !isFinite(s.Direction, s.Len) {
		return parameterError("segment has non-finite parameters")
	}
	if s.Len <= 0 {
		return ErrDegenerateSegment
	}
	return nil
}

// Line returns the segment's center line.
func (s Segment) Line() Line {
	return Line{
		P0: s.From,
		P1: s.From.Translate(VecFromAngle(s.Direction).Mul(s.Len)),
	}
}

func (s Segment) Start() State {
	return State{Point: s.From, Heading: s.Direction}
}

func (s Segment) End() State {
	return State{Point: s.Line().P1, Heading: s.Direction}
}

func (s Segment) Length() float64 {
	return s.Len
}

// Outline returns the rectangle covered by the segment. Straight segments
// are exact, so tolerance is unused.
func (s Segment) Outline(width, tolerance float64) Polygon {
	l := s.Line()
	n := VecFromAngle(s.Direction).Perp().Mul(width / 2)
	return Polygon{
		l.P0.Translate(n.Negate()),
		l.P1.Translate(n.Negate()),
		l.P1.Translate(n),
		l.P0.Translate(n),
	}
}

func (s Segment) BoundingBox() Rect {
	return s.Line().BoundingBox()
}

func (s Segment) Transform(aff Affine) Primitive {
	return Segment{
		From:      s.From.Transform(aff),
		Direction: aff.TransformAngle(s.Direction),
		Len:       s.Len,
	}
}
