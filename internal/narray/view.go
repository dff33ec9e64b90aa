package narray

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/parallel"
)

// View is a non-owning, read-only window into a Storage. It carries
// its own offset, shape and strides, so it can describe any
// rectangular sub-window of its parent; it never copies elements until
// Materialize is called.
//
// A View keeps its parent Storage reachable, so the window can never
// dangle. Further slicing composes offsets without touching the
// parent's buffer.
type View[T Numeric] struct {
	src     *Storage[T]
	offset  int
	shape   Shape
	strides []int
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Rank returns the number of axes.
func (v *View[T]) Rank() int {
	return v.shape.Rank()
}

// NumElements returns the number of elements in the window.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// At returns the element at the given multi-index, resolved through
// the view's own strides. A rank-0 view yields its scalar with no
// indices.
func (v *View[T]) At(indices ...int) (T, error) {
	var zero T
	if len(indices) != len(v.shape) {
		return zero, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfBounds, len(v.shape), len(indices))
	}

	offset := v.offset
	for i, idx := range indices {
		if idx < 0 || idx >= v.shape[i] {
			return zero, fmt.Errorf("%w: index %d out of bounds for axis %d (extent %d)", ErrIndexOutOfBounds, idx, i, v.shape[i])
		}
		offset += idx * v.strides[i]
	}
	return v.src.data[offset], nil
}

// Slice narrows the view along leading axes, one Span per axis.
// Omitted trailing axes keep their full extent. The result is another
// zero-copy View over the same parent.
func (v *View[T]) Slice(spans ...Span) (*View[T], error) {
	if len(spans) > len(v.shape) {
		return nil, fmt.Errorf("%w: %d spans for rank-%d view", ErrIndexOutOfBounds, len(spans), len(v.shape))
	}

	offset := v.offset
	shape := v.shape.Clone()
	for i, sp := range spans {
		start, length, err := sp.normalize(v.shape[i])
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		offset += start * v.strides[i]
		shape[i] = length
	}

	return &View[T]{
		src:     v.src,
		offset:  offset,
		shape:   shape,
		strides: append([]int(nil), v.strides...),
	}, nil
}

// Index fixes the leading axis at i, producing a view of rank one
// less. On a rank-1 view the result is a rank-0 view whose scalar is
// read with At().
func (v *View[T]) Index(i int) (*View[T], error) {
	if len(v.shape) == 0 {
		return nil, fmt.Errorf("%w: cannot index a rank-0 view", ErrIndexOutOfBounds)
	}
	if i < 0 || i >= v.shape[0] {
		return nil, fmt.Errorf("%w: index %d out of bounds for axis 0 (extent %d)", ErrIndexOutOfBounds, i, v.shape[0])
	}

	return &View[T]{
		src:     v.src,
		offset:  v.offset + i*v.strides[0],
		shape:   v.shape[1:].Clone(),
		strides: append([]int(nil), v.strides[1:]...),
	}, nil
}

// Row returns row i of a rank-2 view as a zero-copy rank-1 view. Rows
// are contiguous in row-major layout, so no materialization is needed.
func (v *View[T]) Row(i int) (*View[T], error) {
	if len(v.shape) != 2 {
		return nil, fmt.Errorf("%w: Row requires rank 2, have rank %d", ErrShapeMismatch, len(v.shape))
	}
	return v.Index(i)
}

// Materialize copies the windowed elements into a new owned,
// contiguous Storage. Required before elementwise arithmetic on any
// sliced operand.
func (v *View[T]) Materialize() *Storage[T] {
	out := make([]T, v.shape.NumElements())
	outStrides := v.shape.Strides()

	parallel.For(len(out), func(k int) {
		rem := k
		offset := v.offset
		for i, os := range outStrides {
			offset += (rem / os) * v.strides[i]
			rem %= os
		}
		out[k] = v.src.data[offset]
	}, parallel.DefaultConfig())

	return fromSlice(v.shape, out)
}
