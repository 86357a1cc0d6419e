package waveguide

// Axis is the line through Point with direction Direction.
type Axis struct {
	Point     Point
	Direction Vec2
}

var (
	// VerticalAxis is the y-axis.
	VerticalAxis = Axis{Direction: Vec(0, 1)}
	// HorizontalAxis is the x-axis.
	HorizontalAxis = Axis{Direction: Vec(1, 0)}
)

// NewAxis returns the axis through pt with the given direction.
func NewAxis(pt Point, direction Vec2) (Axis, error) {
	ax := Axis{Point: pt, Direction: direction}
	if err := ax.Validate(); err != nil {
		return Axis{}, err
	}
	return ax, nil
}

func (ax Axis) Validate() error {
	if !ax.Point.isFinite() || !isFinite(ax.Direction.X, ax.Direction.Y) {
		return parameterError("axis has non-finite parameters")
	}
	if ax.Direction.Hypot2() == 0 {
		return parameterError("axis direction must not be zero")
	}
	return nil
}

// Reflection returns the transform that reflects about the axis.
//
// Produces NaN values when the axis has no direction.
func (ax Axis) Reflection() Affine {
	return Reflect(ax.Point, ax.Direction)
}

// Mirror returns the reflection of p about axis. Primitives keep their
// order, radii and lengths; arcs and turns change their rotational sense.
// p is not modified. Axes from untrusted input should be checked with
// [Axis.Validate] first.
func Mirror(p Path, axis Axis) Path {
	return p.Transform(axis.Reflection())
}

// Mirror is shorthand for [Mirror](p, axis).
func (p Path) Mirror(axis Axis) Path {
	return Mirror(p, axis)
}
