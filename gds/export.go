package gds

import (
	"fmt"
	"math"
	"os"
	"time"

	"honnef.co/go/waveguide"
	"honnef.co/go/waveguide/pulley"
)

// Exporter writes a [pulley.StructureSet] to a GDSII file, as a single cell
// with one layer per sweep entry.
type Exporter struct {
	// Path of the file to create.
	Path     string
	LibName  string
	CellName string
	// Tolerance for approximating arcs. Zero means the tolerance of the
	// set's parameters.
	Tolerance float64
	Time      time.Time
}

var _ pulley.Exporter = Exporter{}

// Library converts set into a GDSII library.
func (e Exporter) Library(set pulley.StructureSet) (*Library, error) {
	tol := e.Tolerance
	if tol == 0 {
		tol = set.Params.Tolerance
	}
	if tol == 0 {
		tol = waveguide.DefaultTolerance
	}
	if err := set.Ring.Validate(); err != nil {
		return nil, fmt.Errorf("reference ring: %w", err)
	}
	lib := NewLibrary(e.LibName)
	lib.Time = e.Time
	cell := lib.NewCell(e.CellName)
	for _, s := range set.Shapes(tol) {
		if s.Layer > math.MaxInt16 {
			return nil, fmt.Errorf("layer %d doesn't fit GDSII", s.Layer)
		}
		cell.Add(int16(s.Layer), s.Polygon)
	}
	return lib, nil
}

// Export implements pulley.Exporter.
func (e Exporter) Export(set pulley.StructureSet) (err error) {
	lib, err := e.Library(set)
	if err != nil {
		return err
	}
	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return NewWriter(f).WriteLibrary(lib)
}
