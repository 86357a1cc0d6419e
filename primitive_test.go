package waveguide

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcEndpoints(t *testing.T) {
	const epsilon = 1e-12
	a := Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, EndAngle: math.Pi / 2}
	assertStateNear(t, a.Start(), State{Pt(3, 1), math.Pi / 2}, epsilon)
	assertStateNear(t, a.End(), State{Pt(1, 3), math.Pi}, epsilon)
	if l := a.Length(); math.Abs(l-math.Pi) > epsilon {
		t.Errorf("got length %g, want π", l)
	}

	// Clockwise arcs travel the other way round.
	cw := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi / 2, EndAngle: 0}
	assertStateNear(t, cw.Start(), State{Pt(0, 1), 0}, epsilon)
	assertStateNear(t, cw.End(), State{Pt(1, 0), -math.Pi / 2}, epsilon)
}

func TestTurn(t *testing.T) {
	const epsilon = 1e-12
	from := State{Pt(0, 0), 0}

	left := Turn{From: from, Radius: 1, Delta: math.Pi / 2}
	assertStateNear(t, left.End(), State{Pt(1, 1), math.Pi / 2}, epsilon)
	assertNear(t, left.Arc().Center, Pt(0, 1), epsilon)

	right := Turn{From: from, Radius: 1, Delta: -math.Pi / 2}
	assertStateNear(t, right.End(), State{Pt(1, -1), -math.Pi / 2}, epsilon)
	assertNear(t, right.Arc().Center, Pt(0, -1), epsilon)

	// A turn is the same as the arc it's equivalent to.
	for _, tr := range []Turn{left, right, {From: State{Pt(3, -2), 2.5}, Radius: 7, Delta: -0.3}} {
		assertStateNear(t, tr.Arc().Start(), tr.Start(), epsilon)
		assertStateNear(t, tr.Arc().End(), tr.End(), epsilon)
	}
}

func TestPrimitiveValidate(t *testing.T) {
	for _, tt := range []struct {
		name string
		p    Primitive
		want error
	}{
		{"arc zero radius", Arc{Radius: 0, EndAngle: 1}, ErrParameter},
		{"arc negative radius", Arc{Radius: -1, EndAngle: 1}, ErrParameter},
		{"arc zero sweep", Arc{Radius: 1}, ErrRange},
		{"arc NaN", Arc{Radius: math.NaN(), EndAngle: 1}, ErrParameter},
		{"turn zero radius", Turn{Radius: 0, Delta: 1}, ErrParameter},
		{"turn zero delta", Turn{Radius: 1}, ErrRange},
		{"segment zero length", Segment{}, ErrDegenerateSegment},
		{"segment negative length", Segment{Len: -1}, ErrRange},
		{"valid arc", Arc{Radius: 1, EndAngle: -1}, nil},
		{"valid turn", Turn{Radius: 1, Delta: -1}, nil},
		{"valid segment", Segment{Len: 1}, nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestArcOutlineTolerance(t *testing.T) {
	const tol = 1e-3
	a := Arc{Center: Pt(0, 0), Radius: 10, StartAngle: 0, EndAngle: math.Pi}
	const width = 2
	poly := a.Outline(width, tol)
	if len(poly)%2 != 0 {
		t.Fatalf("outline has odd number of points: %d", len(poly))
	}
	outer := poly[:len(poly)/2]
	for i := 1; i < len(outer); i++ {
		mid := outer[i-1].Midpoint(outer[i])
		if d := 11 - mid.Sub(a.Center).Hypot(); d > tol {
			t.Fatalf("chord %d deviates %g from the arc", i, d)
		}
	}
	assertNear(t, outer[0], Pt(11, 0), 1e-12)
	assertNear(t, outer[len(outer)-1], Pt(-11, 0), 1e-12)
	assertNear(t, poly[len(poly)-1], Pt(9, 0), 1e-12)

	want := math.Pi / 2 * (11*11 - 9*9)
	if got := poly.Area(); math.Abs(got-want) > 0.05 {
		t.Errorf("got area %g, want %g", got, want)
	}
}

func TestSegmentOutline(t *testing.T) {
	s := Segment{From: Pt(1, 1), Direction: math.Pi / 2, Len: 3}
	assertStateNear(t, s.End(), State{Pt(1, 4), math.Pi / 2}, 1e-12)
	poly := s.Outline(0.5, DefaultTolerance)
	if got := poly.Area(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("got area %g, want 1.5", got)
	}
	bbox := poly.BoundingBox()
	if math.Abs(bbox.X0-0.75) > 1e-12 || math.Abs(bbox.X1-1.25) > 1e-12 ||
		math.Abs(bbox.Y0-1) > 1e-12 || math.Abs(bbox.Y1-4) > 1e-12 {
		t.Errorf("unexpected bounding box %v", bbox)
	}
}

func TestArcBoundingBox(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: -math.Pi / 4, EndAngle: math.Pi / 4}
	bbox := a.BoundingBox()
	if math.Abs(bbox.X1-1) > 1e-12 {
		t.Errorf("bounding box misses the extremum at angle 0: %v", bbox)
	}
	if math.Abs(bbox.X0-math.Sqrt2/2) > 1e-12 {
		t.Errorf("unexpected bounding box %v", bbox)
	}
}

func TestPrimitiveBoundingBox(t *testing.T) {
	const epsilon = 1e-12
	for _, tt := range []struct {
		name string
		p    Primitive
		want Rect
	}{
		{"segment", Segment{From: Pt(1, 1), Direction: math.Pi, Len: 3}, Rect{-2, 1, 1, 1}},
		// A quarter turn to the left from the origin ends at (1, 1).
		{"turn", Turn{From: State{Pt(0, 0), 0}, Radius: 1, Delta: math.Pi / 2}, Rect{0, 0, 1, 1}},
		{"arc", Arc{Center: Pt(0, 0), Radius: 2, StartAngle: math.Pi / 4, EndAngle: 3 * math.Pi / 4}, Rect{-math.Sqrt2, math.Sqrt2, math.Sqrt2, 2}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.p.BoundingBox(), cmpopts.EquateApprox(0, epsilon))
		})
	}
}
