package waveguide

// Primitive is one piece of a path: an [Arc], a [Turn] or a [Segment].
//
// Every primitive knows its start and end state, so that a path can verify
// that consecutive primitives line up.
type Primitive interface {
	// Start returns the primitive's start point and heading.
	Start() State
	// End returns the primitive's end point and heading.
	End() State
	// Length returns the length of the primitive's center line.
	Length() float64
	// Outline returns the polygon traced by the primitive when extruded to
	// the given width. No point of the true outline is further than
	// tolerance from the polygon.
	Outline(width, tolerance float64) Polygon
	// Transform maps the primitive through aff, which should be a rigid
	// motion, possibly including a reflection.
	Transform(aff Affine) Primitive
	// BoundingBox returns the bounding box of the primitive's center line.
	BoundingBox() Rect
	// Validate checks the primitive's parameters.
	Validate() error

	primitive()
}

var (
	_ Primitive = Arc{}
	_ Primitive = Turn{}
	_ Primitive = Segment{}
)
