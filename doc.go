// Package waveguide provides the geometry for laying out optical waveguides:
// circular arcs, bends and straight runs, chained into continuous paths and
// extruded to polygons for export to layout files.
//
// # Primitives
//
// A path is built from three kinds of [Primitive]:
//   - [Arc], a circular arc about an absolute center
//   - [Turn], a bend relative to the current position and heading
//   - [Segment], a straight run along the current heading
//
// Each primitive reports the [State] (point and heading) it starts and ends
// in, its length, and the polygon it covers when extruded to a width.
// Curved primitives are approximated by chords that deviate from the true
// curve by at most a tolerance, [DefaultTolerance] unless specified
// otherwise.
//
// # Building paths
//
// [Builder] appends primitives one at a time. Only the first primitive may
// be given in absolute terms; every following primitive is derived from the
// builder's trailing state, so consecutive primitives always share their end
// point and tangent. A finished [Path] is immutable.
//
// # Mirroring
//
// [Mirror] reflects a path about an [Axis] and returns a new path. This is
// how symmetric structures are completed from one half.
//
// # Coordinates
//
// Coordinates are in microns, with y pointing up. Angles are in radians,
// measured anti-clockwise from the positive x-axis.
package waveguide
