package narray

import "errors"

var (
	// ErrConfig indicates invalid construction parameters: a zero or
	// negative shape extent, a degenerate range or linspace, bad
	// distribution parameters, or a builder misused (no strategy, or
	// generated twice).
	ErrConfig = errors.New("narray: invalid configuration")

	// ErrIndexOutOfBounds indicates an index or slice range that
	// exceeds an axis extent.
	ErrIndexOutOfBounds = errors.New("narray: index out of bounds")

	// ErrShapeMismatch indicates an elementwise operation between
	// arrays of incompatible shape.
	ErrShapeMismatch = errors.New("narray: shape mismatch")
)
