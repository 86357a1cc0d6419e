package waveguide

import (
	"math"
	"slices"
)

// Common headings.
const (
	PlusX  = 0.0
	PlusY  = math.Pi / 2
	MinusX = math.Pi
	MinusY = -math.Pi / 2
)

// Turn returns the turn starting at s and the state it ends in.
func (s State) Turn(radius, delta float64) (State, Turn, error) {
	t := Turn{From: s, Radius: radius, Delta: delta}
	if err := t.Validate(); err != nil {
		return s, Turn{}, err
	}
	return t.End(), t, nil
}

// Segment returns the straight segment of the given length starting at s,
// and the state it ends in.
func (s State) Segment(length float64) (State, Segment, error) {
	seg := Segment{From: s.Point, Direction: s.Heading, Len: length}
	if err := seg.Validate(); err != nil {
		return s, Segment{}, err
	}
	return seg.End(), seg, nil
}

// ExtendToX returns the segment that continues along s's heading until it
// reaches the absolute x coordinate x. The length of the segment is
// (x − s.X) / cos(heading), which must be positive.
func (s State) ExtendToX(x float64) (State, Segment, error) {
	cos := math.Cos(s.Heading)
	if math.Abs(cos) < 1e-12 {
		return s, Segment{}, rangeError("heading %g never reaches x = %g", s.Heading, x)
	}
	return s.extend((x - s.Point.X) / cos)
}

// ExtendToY is like [State.ExtendToX] but for the y coordinate.
func (s State) ExtendToY(y float64) (State, Segment, error) {
	sin := math.Sin(s.Heading)
	if math.Abs(sin) < 1e-12 {
		return s, Segment{}, rangeError("heading %g never reaches y = %g", s.Heading, y)
	}
	return s.extend((y - s.Point.Y) / sin)
}

func (s State) extend(length float64) (State, Segment, error) {
	if !(length > 0) {
		return s, Segment{}, ErrDegenerateSegment
	}
	return s.Segment(length)
}

// Builder constructs a [Path] one primitive at a time. Every primitive
// after the first is placed relative to the builder's trailing state, which
// makes gaps and kinks between primitives impossible.
//
// The first error encountered is remembered and all further calls become
// no-ops; it is returned by [Builder.Err] and [Builder.Finish].
type Builder struct {
	start     State
	state     State
	tolerance float64
	prims     []Primitive
	err       error
}

// NewBuilder returns a builder for a path starting at start with the given
// heading.
func NewBuilder(start Point, heading float64) *Builder {
	s := State{Point: start, Heading: heading}
	return &Builder{
		start:     s,
		state:     s,
		tolerance: DefaultTolerance,
	}
}

// NewBuilderAt returns a builder for a path starting at start, heading in
// the positive x direction.
func NewBuilderAt(start Point) *Builder {
	return NewBuilder(start, PlusX)
}

// SetTolerance sets the tolerance used when checking that primitives line
// up.
func (b *Builder) SetTolerance(tolerance float64) *Builder {
	if b.err != nil {
		return b
	}
	if !(tolerance > 0) {
		b.err = parameterError("tolerance %g must be positive", tolerance)
		return b
	}
	b.tolerance = tolerance
	return b
}

// Start returns the state the path starts in. After an absolute arc, this is
// the arc's start.
func (b *Builder) Start() State { return b.start }

// State returns the builder's trailing state.
func (b *Builder) State() State { return b.state }

// Err returns the first error encountered by the builder.
func (b *Builder) Err() error { return b.err }

// Len returns the number of primitives appended so far.
func (b *Builder) Len() int { return len(b.prims) }

// Arc appends an arc given in absolute terms. It may only be used for the
// first primitive, and the arc has to start at the builder's start point.
// The arc's tangent replaces the builder's initial heading.
func (b *Builder) Arc(center Point, radius, startAngle, endAngle float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.prims) != 0 {
		b.err = parameterError("absolute arc must be the first primitive of a path")
		return b
	}
	a := Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
	if err := a.Validate(); err != nil {
		b.err = err
		return b
	}
	if !a.Start().Point.Near(b.state.Point, b.tolerance) {
		b.err = &ContinuityError{Index: 0, Want: b.state, Got: a.Start()}
		return b
	}
	b.start = a.Start()
	b.state = a.Start()
	b.push(a)
	return b
}

// ArcFrom appends an arc of the given radius whose start, at angle
// startAngle on its circle, is the builder's current point. When the path
// already has primitives, the arc's tangent must match the current heading.
func (b *Builder) ArcFrom(radius, startAngle, endAngle float64) *Builder {
	if b.err != nil {
		return b
	}
	if !(radius > 0) {
		b.err = parameterError("arc radius %g must be positive", radius)
		return b
	}
	center := b.state.Point.Translate(VecFromAngle(startAngle).Mul(-radius))
	if len(b.prims) == 0 {
		return b.Arc(center, radius, startAngle, endAngle)
	}
	a := Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
	if err := a.Validate(); err != nil {
		b.err = err
		return b
	}
	if !SameHeading(a.Start().Heading, b.state.Heading, b.tolerance) {
		b.err = &ContinuityError{Index: len(b.prims), Want: b.state, Got: a.Start()}
		return b
	}
	b.push(a)
	return b
}

// Turn appends a bend of the given radius that rotates the heading by
// delta radians. Negative values of delta turn clockwise.
func (b *Builder) Turn(radius, delta float64) *Builder {
	if b.err != nil {
		return b
	}
	_, t, err := b.state.Turn(radius, delta)
	if err != nil {
		b.err = err
		return b
	}
	b.push(t)
	return b
}

// Segment appends a straight segment of the given length along the current
// heading.
func (b *Builder) Segment(length float64) *Builder {
	if b.err != nil {
		return b
	}
	_, seg, err := b.state.Segment(length)
	if err != nil {
		b.err = err
		return b
	}
	b.push(seg)
	return b
}

// SegmentDir is like [Builder.Segment] but names the direction explicitly.
// The direction has to agree with the current heading.
func (b *Builder) SegmentDir(length, direction float64) *Builder {
	if b.err != nil {
		return b
	}
	if !SameHeading(direction, b.state.Heading, b.tolerance) {
		b.err = &ContinuityError{
			Index: len(b.prims),
			Want:  b.state,
			Got:   State{Point: b.state.Point, Heading: direction},
		}
		return b
	}
	return b.Segment(length)
}

// ExtendToX appends a straight segment along the current heading that ends
// at the absolute x coordinate x. See [State.ExtendToX].
func (b *Builder) ExtendToX(x float64) *Builder {
	if b.err != nil {
		return b
	}
	_, seg, err := b.state.ExtendToX(x)
	if err != nil {
		b.err = err
		return b
	}
	b.push(seg)
	return b
}

// ExtendToY appends a straight segment along the current heading that ends
// at the absolute y coordinate y.
func (b *Builder) ExtendToY(y float64) *Builder {
	if b.err != nil {
		return b
	}
	_, seg, err := b.state.ExtendToY(y)
	if err != nil {
		b.err = err
		return b
	}
	b.push(seg)
	return b
}

func (b *Builder) push(p Primitive) {
	if got := p.Start(); !got.Near(b.state, b.tolerance) {
		// Primitives are derived from the trailing state; a mismatch means
		// that a primitive's geometry is wrong.
		panic(&ContinuityError{Index: len(b.prims), Want: b.state, Got: got})
	}
	b.prims = append(b.prims, p)
	b.state = p.End()
}

// Finish returns the path built so far, extruded to width and tagged with
// layer. The builder may continue to be used afterwards; the returned path
// does not share storage with it.
func (b *Builder) Finish(width float64, layer int) (Path, error) {
	if b.err != nil {
		return Path{}, b.err
	}
	if len(b.prims) == 0 {
		return Path{}, parameterError("path has no primitives")
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return Path{}, parameterError("width %g must be positive", width)
	}
	if layer < 0 {
		return Path{}, parameterError("layer %d must not be negative", layer)
	}
	for i, p := range b.prims {
		if r := curvatureRadius(p); width/2 >= r {
			return Path{}, rangeError("width %g too wide for radius %g of primitive %d", width, r, i)
		}
	}
	return Path{
		prims: slices.Clone(b.prims),
		width: width,
		layer: layer,
	}, nil
}

func curvatureRadius(p Primitive) float64 {
	switch p := p.(type) {
	case Arc:
		return p.Radius
	case Turn:
		return p.Radius
	default:
		return math.Inf(1)
	}
}
