// Package morph provides vector paths made of lines and Bézier curves, and
// routines for animating one path into another. It was designed to serve the
// needs of procedurally animated vector graphics, such as lettering that is
// written out stroke by stroke or morphs into other text.
//
// # Commands and paths
//
// A [Command] is a single directed curve segment: a line, a quadratic Bézier
// or a cubic Bézier. The typed primitives [Line], [QuadBez] and [CubicBez]
// provide the underlying math and convert to commands with their Cmd methods.
//
// A [Path] is a sequence of commands. There is no explicit move operation.
// Instead, a path consists of one or more pieces, and a new piece starts
// wherever a command doesn't begin where the previous one ended, or where a
// command has its Lift flag set. [Path.Pieces] returns the individual pieces.
// Paths can be converted to and from PostScript-style drawing instructions
// with [Path.Elements] and [FromElements], and to and from SVG path data with
// [Path.SVG] and [ParseSVG].
//
// All operations on commands and paths return new values. Nothing is modified
// in place.
//
// # Arc length
//
// A [Splitter] indexes a path by arc length. It locates the point at any
// distance along the path and extracts sub-paths between two distances, which
// is what drawing a path partially, one frame at a time, requires.
//
// # Morphing
//
// Morphing one path into another takes three steps, which [Morph] combines:
//
//  1. [TagCorners] inserts zero-length marker commands wherever a path changes
//     direction abruptly. Markers have their Vertex flag set.
//  2. [Match] restructures both paths so that they have the same number of
//     pieces and that corresponding pieces have the same number of commands.
//     Pieces are broken at corners where possible, and commands are subdivided
//     proportionally to their length otherwise.
//  3. An [Interpolator] blends the matched paths. Corners that exist on only
//     one side are rounded off progressively, so that they don't appear or
//     disappear abruptly.
//
// Matching and interpolation only support lines and quadratic Béziers. Cubic
// Béziers, for example from CFF fonts, have to be approximated first, see
// [CubicBez.ApproxQuadSpline].
//
// # Errors
//
// Errors are reported as [UnsupportedCommandKindError] or wrap
// [ErrInvariantViolation]. Both indicate invalid input or a bug and recur
// identically on retry.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug output
// about matching decisions.
package morph
