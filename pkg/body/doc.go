// Package body represents immersed-boundary geometry as composable
// implicit bodies. A body pairs a signed (or pseudo-signed) distance
// function with a time-dependent coordinate map, and the measurement
// routine turns that pair into a true distance, unit normal, and
// boundary velocity at any query point.
package body
