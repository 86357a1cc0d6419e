package pulley

import (
	"fmt"
	"math"

	"honnef.co/go/waveguide"
)

// Params are the fixed constants of a pulley coupler sweep. All lengths are
// in microns.
type Params struct {
	// RingRadius is the center-line radius of the ring resonator.
	RingRadius float64 `json:"ring-radius"`
	// RingWidth is the width of the ring's waveguide.
	RingWidth float64 `json:"ring-width"`
	// WaveguideWidth is the width of the pulley waveguide.
	WaveguideWidth float64 `json:"waveguide-width"`
	// Gap is the distance between the ring and the pulley waveguide in the
	// coupling region.
	Gap float64 `json:"gap"`
	// BendRadius is the radius of the bend that follows the coupling arc.
	BendRadius float64 `json:"bend-radius"`
	// Tolerance is the curve tolerance used for continuity checks and for
	// approximating arcs with polygons.
	Tolerance float64 `json:"tolerance"`
	// ExtendTo is the distance from the origin, along x, at which the
	// straight run ends. Zero means RingRadius.
	ExtendTo float64 `json:"extend-to,omitempty"`
	// CouplingLengths is the sweep: one structure is built per length.
	CouplingLengths []float64 `json:"coupling-lengths"`
}

// DefaultParams returns the parameters of the reference design: a 25µm
// ring, 400nm pulley waveguide, 25nm gap.
func DefaultParams() Params {
	return Params{
		RingRadius:      25,
		RingWidth:       0.5,
		WaveguideWidth:  0.4,
		Gap:             0.025,
		BendRadius:      25,
		Tolerance:       waveguide.DefaultTolerance,
		CouplingLengths: []float64{1, 2, 3, 3.2, 3.5, 4, 5},
	}
}

// Validate checks the shared constants. It does not look at the individual
// coupling lengths; those are checked per entry when building.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"ring radius", p.RingRadius},
		{"ring width", p.RingWidth},
		{"waveguide width", p.WaveguideWidth},
		{"gap", p.Gap},
		{"bend radius", p.BendRadius},
		{"tolerance", p.Tolerance},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s %g must be positive", waveguide.ErrParameter, f.name, f.v)
		}
	}
	if p.RingWidth >= 2*p.RingRadius {
		return fmt.Errorf("%w: ring width %g exceeds ring diameter", waveguide.ErrParameter, p.RingWidth)
	}
	if p.WaveguideWidth >= 2*p.BendRadius {
		return fmt.Errorf("%w: waveguide width %g too wide for bend radius %g",
			waveguide.ErrParameter, p.WaveguideWidth, p.BendRadius)
	}
	if math.IsNaN(p.ExtendTo) || math.IsInf(p.ExtendTo, 0) || p.ExtendTo < 0 {
		return fmt.Errorf("%w: extension %g must not be negative", waveguide.ErrParameter, p.ExtendTo)
	}
	return nil
}

// extent returns the absolute x distance the straight run extends to.
func (p Params) extent() float64 {
	if p.ExtendTo == 0 {
		return p.RingRadius
	}
	return p.ExtendTo
}

// Geometry holds the radii derived from [Params]. They are shared by all
// entries of a sweep.
type Geometry struct {
	RingInnerRadius float64
	RingOuterRadius float64
	// PulleyRadius is the center-line radius of the coupling arc.
	PulleyRadius      float64
	PulleyInnerRadius float64
	PulleyOuterRadius float64
}

// Geometry derives the radii of the ring and the pulley. p should be valid.
func (p Params) Geometry() Geometry {
	g := Geometry{
		RingInnerRadius: p.RingRadius - p.RingWidth/2,
		RingOuterRadius: p.RingRadius + p.RingWidth/2,
	}
	g.PulleyRadius = g.RingOuterRadius + p.Gap + p.WaveguideWidth/2
	g.PulleyInnerRadius = g.PulleyRadius - p.WaveguideWidth/2
	g.PulleyOuterRadius = g.PulleyRadius + p.WaveguideWidth/2
	return g
}

// Ring returns the reference ring resonator, centered on the origin.
func (g Geometry) Ring() waveguide.Ring {
	return waveguide.Ring{
		InnerRadius: g.RingInnerRadius,
		OuterRadius: g.RingOuterRadius,
	}
}
