// Package gds reads and writes GDSII stream files, the layout format used to
// hand geometry to simulation and fabrication tools.
//
// Only the subset needed for flat layouts is supported: libraries of cells
// containing boundary (polygon) elements.
package gds
