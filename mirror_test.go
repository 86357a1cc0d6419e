package waveguide

import (
	"errors"
	"math"
	"testing"
)

func halfPulley(t *testing.T) Path {
	t.Helper()
	p, err := NewBuilderAt(Pt(0, 10)).
		Arc(Pt(0, 0), 10, math.Pi/2, math.Pi/2+0.2).
		Turn(5, -0.2).
		ExtendToX(-20).
		Finish(0.4, 3)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMirrorVertical(t *testing.T) {
	const epsilon = 1e-9
	p := halfPulley(t)
	m := Mirror(p, VerticalAxis)

	if m.Len() != p.Len() || m.Layer() != p.Layer() || m.Width() != p.Width() {
		t.Fatalf("mirror changed the path's shape: %d/%d primitives, layer %d/%d",
			m.Len(), p.Len(), m.Layer(), p.Layer())
	}
	if err := m.CheckContinuity(epsilon); err != nil {
		t.Fatal(err)
	}
	for i := range p.Len() {
		for _, pair := range [][2]State{{p.At(i).Start(), m.At(i).Start()}, {p.At(i).End(), m.At(i).End()}} {
			src, dst := pair[0], pair[1]
			assertNear(t, dst.Point, Pt(-src.Point.X, src.Point.Y), epsilon)
			if !SameHeading(dst.Heading, math.Pi-src.Heading, epsilon) {
				t.Errorf("primitive %d: heading %g doesn't mirror %g", i, dst.Heading, src.Heading)
			}
		}
		if d := m.At(i).Length() - p.At(i).Length(); math.Abs(d) > epsilon {
			t.Errorf("primitive %d: length changed by %g", i, d)
		}
	}

	// The half pulley leaves towards −x, so its mirror image leaves towards +x.
	assertStateNear(t, m.Start(), State{Pt(0, 10), 0}, epsilon)
	assertNear(t, m.End().Point, Pt(20, p.End().Point.Y), epsilon)

	arc := m.At(0).(Arc)
	if arc.Radius != 10 || arc.Sweep() >= 0 {
		t.Errorf("mirrored arc should be clockwise with radius 10, got %+v", arc)
	}
	turn := m.At(1).(Turn)
	if turn.Radius != 5 || math.Abs(turn.Delta-0.2) > epsilon {
		t.Errorf("mirrored turn should turn left by 0.2, got %+v", turn)
	}
}

func TestMirrorInvolution(t *testing.T) {
	const epsilon = 1e-9
	p := halfPulley(t)
	for _, axis := range []Axis{
		VerticalAxis,
		HorizontalAxis,
		{Point: Pt(3, -1), Direction: Vec(1, 2)},
	} {
		mm := p.Mirror(axis).Mirror(axis)
		if mm.Len() != p.Len() {
			t.Fatalf("got %d primitives, want %d", mm.Len(), p.Len())
		}
		for i := range p.Len() {
			assertStateNear(t, mm.At(i).Start(), p.At(i).Start(), epsilon)
			assertStateNear(t, mm.At(i).End(), p.At(i).End(), epsilon)
		}
	}
}

func TestMirrorDoesNotModifySource(t *testing.T) {
	p := halfPulley(t)
	before := p.Primitives()
	m := Mirror(p, VerticalAxis)
	diff(t, before, p.Primitives())

	// Neither path aliases the other's primitives.
	mp := m.Primitives()
	mp[0] = Segment{Len: 1}
	diff(t, before, p.Primitives())
}

func TestMirrorPolygons(t *testing.T) {
	p := halfPulley(t)
	m := Mirror(p, VerticalAxis)
	pp := p.Polygons(DefaultTolerance)
	mp := m.Polygons(DefaultTolerance)
	for i := range pp {
		if a, b := pp[i].Area(), mp[i].Area(); math.Abs(a+b) > 1e-9 {
			t.Errorf("polygon %d: areas %g and %g should be opposite", i, a, b)
		}
	}
	bb := p.BoundingBox(DefaultTolerance)
	mb := m.BoundingBox(DefaultTolerance)
	if math.Abs(bb.X0+mb.X1) > 1e-9 || math.Abs(bb.Y0-mb.Y0) > 1e-9 {
		t.Errorf("bounding boxes %v and %v aren't mirror images", bb, mb)
	}
}

func TestAxisValidate(t *testing.T) {
	if _, err := NewAxis(Pt(1, 2), Vec(0, 0)); !errors.Is(err, ErrParameter) {
		t.Errorf("zero direction: got error %v, want %v", err, ErrParameter)
	}
	if _, err := NewAxis(Pt(math.NaN(), 0), Vec(0, 1)); !errors.Is(err, ErrParameter) {
		t.Errorf("NaN point: got error %v, want %v", err, ErrParameter)
	}
	ax, err := NewAxis(Pt(1, 0), Vec(0, 3))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, Pt(3, 5).Transform(ax.Reflection()), Pt(-1, 5), 1e-12)

	// An unchecked zero axis produces NaN geometry instead of panicking.
	m := Mirror(halfPulley(t), Axis{})
	if !m.Start().Point.IsNaN() {
		t.Errorf("got start %s, want NaN", m.Start().Point)
	}
}
