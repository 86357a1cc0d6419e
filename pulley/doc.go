// Package pulley generates sweeps of pulley couplers: waveguides that follow
// a ring resonator along an arc of a given coupling length, bend away, and
// continue in a straight line.
//
// Each coupling length of a sweep produces one [Structure], consisting of a
// half pulley and its mirror image, on a layer of its own so that a single
// layout file can drive a parameter sweep in a simulator. The reference ring
// occupies [ReferenceLayer].
package pulley
