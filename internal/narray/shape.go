package narray

import "fmt"

// Numeric is the constraint for supported array element types.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Shape represents the extents of an array's axes. Rank is the number
// of axes; an empty Shape describes a scalar.
type Shape []int

// NewShape validates dims and returns them as a Shape.
func NewShape(dims ...int) (Shape, error) {
	s := Shape(dims)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is strictly positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d (must be > 0)", ErrConfig, i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major addressing coefficients: the last axis
// has stride 1 and each preceding axis multiplies by the next axis's
// extent.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex maps a multi-index to its row-major flat offset.
func (s Shape) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(s) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfBounds, len(s), len(indices))
	}

	offset := 0
	strides := s.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= s[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for axis %d (extent %d)", ErrIndexOutOfBounds, idx, i, s[i])
		}
		offset += idx * strides[i]
	}
	return offset, nil
}
