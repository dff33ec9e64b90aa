package narray

import (
	"github.com/numgo-ml/numgo/internal/narray"
)

// Numeric is the constraint for supported array element types.
type Numeric = narray.Numeric

// Shape represents the extents of an array's axes.
type Shape = narray.Shape

// Array is an owned N-dimensional array: a contiguous row-major
// buffer together with its shape and strides. Arrays are produced by
// the rank-bound builders and by view materialization.
type Array[T Numeric] = narray.Storage[T]

// View is a non-owning, read-only window into an Array, produced by
// Slice, Index and Row.
type View[T Numeric] = narray.View[T]

// Builder accumulates a shape and a fill strategy and produces an
// Array. See the rank-bound entry points Vector, Matrix, Cube and
// Tensor4.
type Builder[T Numeric] = narray.Builder[T]

// Span selects a contiguous run of indices along one axis; see the
// constructors Between, From, To, All, Through and ToThrough.
type Span = narray.Span

// Typed failure sentinels; match with errors.Is.
var (
	ErrConfig           = narray.ErrConfig
	ErrIndexOutOfBounds = narray.ErrIndexOutOfBounds
	ErrShapeMismatch    = narray.ErrShapeMismatch
)

// NewShape validates dims and returns them as a Shape.
func NewShape(dims ...int) (Shape, error) {
	return narray.NewShape(dims...)
}

// Vector returns a builder for a rank-1 array of length n.
func Vector[T Numeric](n int) *Builder[T] {
	return narray.New[T](n)
}

// Matrix returns a builder for a rank-2 array with the given rows and
// columns.
func Matrix[T Numeric](rows, cols int) *Builder[T] {
	return narray.New[T](rows, cols)
}

// Cube returns a builder for a rank-3 array.
func Cube[T Numeric](d1, d2, d3 int) *Builder[T] {
	return narray.New[T](d1, d2, d3)
}

// Tensor4 returns a builder for a rank-4 array.
func Tensor4[T Numeric](d1, d2, d3, d4 int) *Builder[T] {
	return narray.New[T](d1, d2, d3, d4)
}

// Between selects indices in the half-open interval [start, end).
func Between(start, end int) Span { return narray.Between(start, end) }

// From selects indices from start through the end of the axis.
func From(start int) Span { return narray.From(start) }

// To selects indices in the half-open interval [0, end).
func To(end int) Span { return narray.To(end) }

// All selects every index of the axis.
func All() Span { return narray.All() }

// Through selects indices in the closed interval [start, end].
func Through(start, end int) Span { return narray.Through(start, end) }

// ToThrough selects indices in the closed interval [0, end].
func ToThrough(end int) Span { return narray.ToThrough(end) }
