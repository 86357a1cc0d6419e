package waveguide

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	diff(t, Pt(0, 0).Midpoint(Pt(2, 4)), Pt(1, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if !p3.Near(p4, 5) || p3.Near(p4, 4.999) {
		t.Error("Near disagrees with Distance")
	}
}

func TestAngles(t *testing.T) {
	for _, tt := range []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	} {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}

	if d := AngleDiff(0.1, 2*math.Pi-0.1); math.Abs(d-0.2) > 1e-12 {
		t.Errorf("AngleDiff wrapped incorrectly: %g", d)
	}
	if !SameHeading(math.Pi, -math.Pi, 1e-12) {
		t.Error("π and −π should be the same heading")
	}
	if SameHeading(0, math.Pi, 1) {
		t.Error("opposite headings compare equal")
	}
}
