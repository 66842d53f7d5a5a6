// Package render draws morph paths onto raster images.
//
// A [Canvas] fills and strokes paths with golang.org/x/image/vector. Strokes
// can be drawn partially, for effects that write a path out over time, and
// split into differently colored sections by arc length, see [Sections].
//
// Empty paths are valid input everywhere and draw nothing.
package render
