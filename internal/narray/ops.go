package narray

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/parallel"
)

// binaryOp applies f elementwise over two same-shape storages.
func binaryOp[T Numeric](a, b *Storage[T], f func(x, y T) T) (*Storage[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	out := fromFunc(a.shape, func(k int) T {
		return f(a.data[k], b.data[k])
	})
	return out, nil
}

// Add returns the elementwise sum of two same-shape arrays.
func (s *Storage[T]) Add(other *Storage[T]) (*Storage[T], error) {
	return binaryOp(s, other, func(x, y T) T { return x + y })
}

// Sub returns the elementwise difference of two same-shape arrays.
func (s *Storage[T]) Sub(other *Storage[T]) (*Storage[T], error) {
	return binaryOp(s, other, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product of two same-shape arrays.
func (s *Storage[T]) Mul(other *Storage[T]) (*Storage[T], error) {
	return binaryOp(s, other, func(x, y T) T { return x * y })
}

// AddScalar adds v to every element.
func (s *Storage[T]) AddScalar(v T) *Storage[T] {
	return fromFunc(s.shape, func(k int) T { return s.data[k] + v })
}

// SubScalar subtracts v from every element.
func (s *Storage[T]) SubScalar(v T) *Storage[T] {
	return fromFunc(s.shape, func(k int) T { return s.data[k] - v })
}

// MulScalar multiplies every element by v.
func (s *Storage[T]) MulScalar(v T) *Storage[T] {
	return fromFunc(s.shape, func(k int) T { return s.data[k] * v })
}

// Power raises every element to the given non-negative integer
// exponent.
func (s *Storage[T]) Power(exp int) (*Storage[T], error) {
	if exp < 0 {
		return nil, fmt.Errorf("%w: exponent %d must be >= 0", ErrConfig, exp)
	}
	return fromFunc(s.shape, func(k int) T {
		result := T(1)
		for i := 0; i < exp; i++ {
			result *= s.data[k]
		}
		return result
	}), nil
}

// Sum returns the sum of all elements.
func (s *Storage[T]) Sum() T {
	var sum T
	for _, v := range s.data {
		sum += v
	}
	return sum
}

// Max returns the largest element.
func (s *Storage[T]) Max() T {
	m := s.data[0]
	for _, v := range s.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest element.
func (s *Storage[T]) Min() T {
	m := s.data[0]
	for _, v := range s.data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Slice narrows the array along leading axes, returning a zero-copy
// read-only view. See View.Slice.
func (s *Storage[T]) Slice(spans ...Span) (*View[T], error) {
	return s.View().Slice(spans...)
}

// Index fixes the leading axis at i, returning a view of rank one
// less.
func (s *Storage[T]) Index(i int) (*View[T], error) {
	return s.View().Index(i)
}

// Row returns row i of a rank-2 array as a zero-copy view.
func (s *Storage[T]) Row(i int) (*View[T], error) {
	return s.View().Row(i)
}

// Column returns column j of a rank-2 array as a new owned rank-1
// array. Columns are strided in row-major layout, so they cannot be
// represented as a contiguous zero-copy view and are always copied.
func (s *Storage[T]) Column(j int) (*Storage[T], error) {
	if len(s.shape) != 2 {
		return nil, fmt.Errorf("%w: Column requires rank 2, have rank %d", ErrShapeMismatch, len(s.shape))
	}
	rows, cols := s.shape[0], s.shape[1]
	if j < 0 || j >= cols {
		return nil, fmt.Errorf("%w: column %d out of bounds (extent %d)", ErrIndexOutOfBounds, j, cols)
	}

	out := make([]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = s.data[i*cols+j]
	}
	return fromSlice(Shape{rows}, out), nil
}

// Transpose returns a new owned array with the axes of a rank-2 array
// swapped.
func (s *Storage[T]) Transpose() (*Storage[T], error) {
	if len(s.shape) != 2 {
		return nil, fmt.Errorf("%w: Transpose requires rank 2, have rank %d", ErrShapeMismatch, len(s.shape))
	}
	rows, cols := s.shape[0], s.shape[1]

	out := make([]T, len(s.data))
	parallel.For(len(out), func(k int) {
		i, j := k/rows, k%rows
		out[k] = s.data[j*cols+i]
	}, parallel.DefaultConfig())
	return fromSlice(Shape{cols, rows}, out), nil
}
