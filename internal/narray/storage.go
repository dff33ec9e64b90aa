package narray

import (
	"fmt"
	"strings"

	"github.com/numgo-ml/numgo/internal/parallel"
)

// Storage is an owned, contiguous, row-major element buffer together
// with its shape and strides. Storages are produced by Builder.Generate
// and by view materialization; after creation the shape is immutable
// and the buffer mutates only through Set on the owner.
type Storage[T Numeric] struct {
	data    []T
	shape   Shape
	strides []int
}

// fromFunc allocates a Storage and fills element k with f(k).
//
// f must be pure with respect to k: the buffer is populated through
// parallel.For, so fill order is unspecified. shape must already be
// validated; the Builder path guarantees that, and a violation here is
// an internal defect.
func fromFunc[T Numeric](shape Shape, f func(k int) T) *Storage[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("narray: fromFunc on invalid shape %v: %v", shape, err))
	}

	data := make([]T, shape.NumElements())
	parallel.For(len(data), func(k int) {
		data[k] = f(k)
	}, parallel.DefaultConfig())

	return &Storage[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.Strides(),
	}
}

// fromSlice wraps an already-computed buffer. Used by sequential fills
// (random strategies) and strided copies; len(data) must equal the
// shape's element count.
func fromSlice[T Numeric](shape Shape, data []T) *Storage[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("narray: fromSlice on invalid shape %v: %v", shape, err))
	}
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("narray: buffer length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements()))
	}
	return &Storage[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.Strides(),
	}
}

// Shape returns the storage's shape.
func (s *Storage[T]) Shape() Shape {
	return s.shape
}

// Rank returns the number of axes.
func (s *Storage[T]) Rank() int {
	return s.shape.Rank()
}

// NumElements returns the total number of elements.
func (s *Storage[T]) NumElements() int {
	return len(s.data)
}

// Strides returns the row-major addressing coefficients.
func (s *Storage[T]) Strides() []int {
	return s.strides
}

// Data returns the live flat buffer in row-major order.
//
// WARNING: modifications through the returned slice mutate the array.
// Only the owning scope may do that; Views hand out copies instead.
func (s *Storage[T]) Data() []T {
	return s.data
}

// At returns the element at the given multi-index.
func (s *Storage[T]) At(indices ...int) (T, error) {
	offset, err := s.shape.FlatIndex(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[offset], nil
}

// Set writes the element at the given multi-index. This is the only
// mutation path after generation.
func (s *Storage[T]) Set(value T, indices ...int) error {
	offset, err := s.shape.FlatIndex(indices...)
	if err != nil {
		return err
	}
	s.data[offset] = value
	return nil
}

// View returns a read-only window spanning the whole extent.
func (s *Storage[T]) View() *View[T] {
	return &View[T]{
		src:     s,
		offset:  0,
		shape:   s.shape.Clone(),
		strides: append([]int(nil), s.strides...),
	}
}

// Clone returns a deep copy: a new buffer with the same shape and
// elements.
func (s *Storage[T]) Clone() *Storage[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)
	return fromSlice(s.shape, data)
}

// Equal reports whether two storages have the same shape and elements.
func (s *Storage[T]) Equal(other *Storage[T]) bool {
	if !s.shape.Equal(other.shape) {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the shape and, for small arrays, the elements.
func (s *Storage[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Array%v", []int(s.shape))
	if len(s.data) <= 16 {
		fmt.Fprintf(&b, "%v", s.data)
	} else {
		fmt.Fprintf(&b, "[%v ... %v]", s.data[0], s.data[len(s.data)-1])
	}
	return b.String()
}
