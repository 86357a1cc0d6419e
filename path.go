package waveguide

import "slices"

// Path is an immutable, continuous chain of primitives, extruded to a fixed
// width and tagged with a layer.
//
// Paths are created by [Builder.Finish] and [Mirror]. The zero value is an
// empty path.
type Path struct {
	prims []Primitive
	width float64
	layer int
}

// Primitives returns a copy of the path's primitives.
func (p Path) Primitives() []Primitive { return slices.Clone(p.prims) }

func (p Path) Len() int { return len(p.prims) }
func (p Path) At(i int) Primitive { return p.prims[i] }
func (p Path) Width() float64 { return p.width }
func (p Path) Layer() int { return p.layer }
func (p Path) IsEmpty() bool { return len(p.prims) == 0 }

// Start returns the state the path starts in. It returns the zero State for
// an empty path.
func (p Path) Start() State {
	if p.IsEmpty() {
		return State{}
	}
	return p.prims[0].Start()
}

// End returns the state the path ends in. It returns the zero State for an
// empty path.
func (p Path) End() State {
	if p.IsEmpty() {
		return State{}
	}
	return p.prims[len(p.prims)-1].End()
}

// Length returns the length of the path's center line.
func (p Path) Length() float64 {
	var l float64
	for _, prim := range p.prims {
		l += prim.Length()
	}
	return l
}

// Polygons returns the outline of every primitive, in order.
func (p Path) Polygons(tolerance float64) []Polygon {
	out := make([]Polygon, len(p.prims))
	for i, prim := range p.prims {
		out[i] = prim.Outline(p.width, tolerance)
	}
	return out
}

// BoundingBox returns the bounding box of the path's outline.
func (p Path) BoundingBox(tolerance float64) Rect {
	bbox := emptyRect
	for _, poly := range p.Polygons(tolerance) {
		bbox = bbox.Union(poly.BoundingBox())
	}
	return bbox
}

// Transform maps every primitive through aff, which should be a rigid
// motion, possibly including a reflection.
func (p Path) Transform(aff Affine) Path {
	prims := make([]Primitive, len(p.prims))
	for i, prim := range p.prims {
		prims[i] = prim.Transform(aff)
	}
	return Path{
		prims: prims,
		width: p.width,
		layer: p.layer,
	}
}

// CheckContinuity verifies that every primitive starts where the previous
// one ended, in both position and heading. It returns a *[ContinuityError]
// for the first mismatch.
func (p Path) CheckContinuity(tolerance float64) error {
	for i := 1; i < len(p.prims); i++ {
		want := p.prims[i-1].End()
		got := p.prims[i].Start()
		if !got.Near(want, tolerance) {
			return &ContinuityError{Index: i, Want: want, Got: got}
		}
	}
	return nil
}
