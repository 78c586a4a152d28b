// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, an axis aligned Rect and
// helpers to sample random values from a Source.
package gm
