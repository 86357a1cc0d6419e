package pulley

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/waveguide"
)

// ReferenceLayer is the layer of the reference ring. Sweep entries use the
// layers after it.
const ReferenceLayer = 0

// Layer returns the layer of the sweep entry at index.
func Layer(index int) int {
	return index + 1
}

// ArcAngle returns the central angle of an arc of length lc at radius
// pulleyRadius. The full coupling arc, both halves combined, has to stay
// below a full circle.
func ArcAngle(lc, pulleyRadius float64) (float64, error) {
	if math.IsNaN(lc) || math.IsInf(lc, 0) || lc <= 0 {
		return 0, fmt.Errorf("%w: coupling length %g must be positive", waveguide.ErrParameter, lc)
	}
	if !(pulleyRadius > 0) {
		return 0, fmt.Errorf("%w: pulley radius %g must be positive", waveguide.ErrParameter, pulleyRadius)
	}
	theta := lc / pulleyRadius
	if theta/2 >= math.Pi {
		return 0, fmt.Errorf("%w: coupling length %g spans %g rad at radius %g",
			waveguide.ErrRange, lc, theta, pulleyRadius)
	}
	return theta, nil
}

// BuildHalf builds one half of a pulley: half of the coupling arc, starting
// at the top of the pulley circle, a bend that brings the waveguide back
// parallel to the x-axis, and a straight run in the negative x direction.
func BuildHalf(p Params, g Geometry, lc float64, layer int) (waveguide.Path, error) {
	theta, err := ArcAngle(lc, g.PulleyRadius)
	if err != nil {
		return waveguide.Path{}, err
	}
	if !(p.BendRadius > 0) {
		return waveguide.Path{}, fmt.Errorf("%w: bend radius %g must be positive", waveguide.ErrParameter, p.BendRadius)
	}
	return waveguide.NewBuilderAt(waveguide.Pt(0, g.PulleyRadius)).
		SetTolerance(p.Tolerance).
		Arc(waveguide.Point{}, g.PulleyRadius, math.Pi/2, math.Pi/2+theta/2).
		Turn(p.BendRadius, -theta/2).
		ExtendToX(-p.extent()).
		Finish(p.WaveguideWidth, layer)
}

// Structure is one entry of the sweep: a pulley made of two mirrored
// halves on a common layer.
type Structure struct {
	Index    int
	Length   float64
	ArcAngle float64
	Layer    int
	Half     waveguide.Path
	Mirrored waveguide.Path
}

// Paths returns both halves of the pulley.
func (s Structure) Paths() [2]waveguide.Path {
	return [2]waveguide.Path{s.Half, s.Mirrored}
}

// EntryError is the error for a single sweep entry.
type EntryError struct {
	Index  int
	Length float64
	Err    error
}

func (err *EntryError) Error() string {
	return fmt.Sprintf("sweep entry %d (coupling length %g): %s", err.Index, err.Length, err.Err)
}

func (err *EntryError) Unwrap() error {
	return err.Err
}

// BuildEntry builds the sweep entry at index. Errors are of type
// *[EntryError].
func BuildEntry(p Params, g Geometry, index int) (Structure, error) {
	lc := p.CouplingLengths[index]
	layer := Layer(index)
	half, err := BuildHalf(p, g, lc, layer)
	if err != nil {
		return Structure{}, &EntryError{Index: index, Length: lc, Err: err}
	}
	return Structure{
		Index:    index,
		Length:   lc,
		ArcAngle: lc / g.PulleyRadius,
		Layer:    layer,
		Half:     half,
		Mirrored: half.Mirror(waveguide.VerticalAxis),
	}, nil
}

// StructureSet is the complete output of a sweep: the reference ring and
// one structure per coupling length.
type StructureSet struct {
	Params     Params
	Geometry   Geometry
	Ring       waveguide.Ring
	Structures []Structure
}

// Shape is an extruded polygon on a layer.
type Shape struct {
	Layer   int
	Polygon waveguide.Polygon
}

// Shapes returns every polygon of the set: the ring first, then both halves
// of each structure in sweep order.
func (set StructureSet) Shapes(tolerance float64) []Shape {
	shapes := []Shape{{Layer: ReferenceLayer, Polygon: set.Ring.Polygon(tolerance)}}
	for _, s := range set.Structures {
		for _, path := range s.Paths() {
			for _, poly := range path.Polygons(tolerance) {
				shapes = append(shapes, Shape{Layer: path.Layer(), Polygon: poly})
			}
		}
	}
	return shapes
}

// Layers returns the layers used by the set, in increasing order.
func (set StructureSet) Layers() []int {
	layers := []int{ReferenceLayer}
	for _, s := range set.Structures {
		layers = append(layers, s.Layer)
	}
	return layers
}

// Exporter writes a structure set somewhere, typically to a layout file.
type Exporter interface {
	Export(set StructureSet) error
}

// Build builds the complete structure set for p. Entries are built
// concurrently. If any entry fails, Build returns all entry errors, joined,
// and no structures.
func Build(p Params) (StructureSet, error) {
	set, err := BuildPartial(p)
	if err != nil {
		return StructureSet{}, err
	}
	return set, nil
}

// BuildPartial is like [Build], but returns the successfully built entries
// alongside the errors of the failed ones, leaving it to the caller to
// decide whether to continue. If the shared parameters are invalid, no
// entries are built.
func BuildPartial(p Params) (StructureSet, error) {
	if err := p.Validate(); err != nil {
		return StructureSet{}, err
	}
	g := p.Geometry()
	ring := g.Ring()
	if err := ring.Validate(); err != nil {
		return StructureSet{}, err
	}

	structures := make([]Structure, len(p.CouplingLengths))
	errs := make([]error, len(p.CouplingLengths))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range p.CouplingLengths {
		eg.Go(func() error {
			structures[i], errs[i] = BuildEntry(p, g, i)
			return nil
		})
	}
	// The goroutines never fail. Entry errors are kept per index in errs so
	// that they are joined in sweep order.
	_ = eg.Wait()

	set := StructureSet{
		Params:   p,
		Geometry: g,
		Ring:     ring,
	}
	for i, s := range structures {
		if errs[i] == nil {
			set.Structures = append(set.Structures, s)
		}
	}
	return set, errors.Join(errs...)
}
