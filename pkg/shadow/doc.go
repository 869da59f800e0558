// Package shadow computes shadow back-projection scores over the board.
//
// For every measurement angle, each block casts a shadow band: an interval
// on the line through the board center in that direction. A cell is hit at
// an angle when the projection of its center falls inside any block's band.
// Averaging hits over all angles yields a [Grid] of scores in [0, 1]; cells
// whose score reaches a threshold are reported by [Detect].
//
// # Shadow Width
//
// The half-width of a band depends only on the angle. The angle is first
// shifted by ±45° to account for the offset between a block's silhouette and
// its projection direction; the half-width is then the chord half-length of
// a 5-unit block diagonal, shrunk by 0.1 to avoid boundary hits. Both
// constants come from calibration against the physical board and are kept
// literally. See [HalfWidth].
//
// # Properties
//
//   - Every score lies in [0, 1] and equals hits / len(angles).
//   - Angle order does not matter.
//   - With a single angle every score is exactly 0 or 1.
//   - At 0° only block x-coordinates matter; at 90° only y-coordinates.
//
// All functions are pure and deterministic.
package shadow
