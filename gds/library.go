package gds

import (
	"fmt"
	"math"
	"time"

	"honnef.co/go/waveguide"
)

// MaxVertices is the largest number of vertices of a boundary. The XY record
// repeats the first vertex and has to fit a single record.
const MaxVertices = maxRecordData/8 - 1

// Library is a GDSII library.
type Library struct {
	Name string
	// Unit is the size of a user unit in meters, 1e-6 for microns.
	Unit float64
	// Precision is the size of a database unit in meters. Coordinates are
	// rounded to multiples of it.
	Precision float64
	// Time is recorded as the library's modification and access time.
	Time  time.Time
	Cells []*Cell
}

// NewLibrary returns an empty library in microns with nanometer precision.
func NewLibrary(name string) *Library {
	return &Library{
		Name:      name,
		Unit:      1e-6,
		Precision: 1e-9,
	}
}

// NewCell adds an empty cell to the library.
func (lib *Library) NewCell(name string) *Cell {
	c := &Cell{Name: name}
	lib.Cells = append(lib.Cells, c)
	return c
}

func (lib *Library) validate() error {
	if !(lib.Unit > 0) || !(lib.Precision > 0) {
		return fmt.Errorf("library %q: unit %g and precision %g must be positive", lib.Name, lib.Unit, lib.Precision)
	}
	seen := map[string]bool{}
	for _, c := range lib.Cells {
		if seen[c.Name] {
			return fmt.Errorf("library %q: duplicate cell %q", lib.Name, c.Name)
		}
		seen[c.Name] = true
		for i, b := range c.Boundaries {
			if err := b.validate(); err != nil {
				return fmt.Errorf("cell %q, boundary %d: %w", c.Name, i, err)
			}
		}
	}
	return nil
}

// Cell is a GDSII structure.
type Cell struct {
	Name       string
	Boundaries []BoundaryElement
}

// Add adds a polygon on the given layer, with datatype 0.
func (c *Cell) Add(layer int16, poly waveguide.Polygon) {
	c.Boundaries = append(c.Boundaries, BoundaryElement{Layer: layer, Points: poly})
}

// BoundaryElement is a filled polygon. The polygon is closed implicitly.
type BoundaryElement struct {
	Layer    int16
	Datatype int16
	Points   waveguide.Polygon
}

func (b BoundaryElement) validate() error {
	if b.Layer < 0 || b.Datatype < 0 {
		return fmt.Errorf("negative layer %d or datatype %d", b.Layer, b.Datatype)
	}
	if len(b.Points) < 3 {
		return fmt.Errorf("polygon has %d vertices, need at least 3", len(b.Points))
	}
	if len(b.Points) > MaxVertices {
		return fmt.Errorf("polygon has %d vertices, at most %d are allowed", len(b.Points), MaxVertices)
	}
	return nil
}

// dbUnits converts a coordinate in user units to database units.
func (lib *Library) dbUnits(v float64) (int32, error) {
	d := math.Round(v * lib.Unit / lib.Precision)
	if d > math.MaxInt32 || d < math.MinInt32 || math.IsNaN(d) {
		return 0, fmt.Errorf("coordinate %g out of range", v)
	}
	return int32(d), nil
}
