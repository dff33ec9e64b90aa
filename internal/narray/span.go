package narray

import "fmt"

// Span selects a contiguous run of indices along one axis. The six
// kinds mirror the usual range notations:
//
//	Between(a, b)   a..b   half-open
//	From(a)         a..    to the end of the axis
//	To(b)           ..b    from the start, half-open
//	All()           ..     the whole axis
//	Through(a, b)   a..=b  inclusive end
//	ToThrough(b)    ..=b   from the start, inclusive end
//
// A Span carries no extent of its own; it is validated against an axis
// when a slice is taken.
type Span struct {
	start     int
	end       int
	hasStart  bool
	hasEnd    bool
	inclusive bool
}

// Between selects indices in the half-open interval [start, end).
func Between(start, end int) Span {
	return Span{start: start, end: end, hasStart: true, hasEnd: true}
}

// From selects indices from start through the end of the axis.
func From(start int) Span {
	return Span{start: start, hasStart: true}
}

// To selects indices in the half-open interval [0, end).
func To(end int) Span {
	return Span{end: end, hasEnd: true}
}

// All selects every index of the axis.
func All() Span {
	return Span{}
}

// Through selects indices in the closed interval [start, end].
func Through(start, end int) Span {
	return Span{start: start, end: end, hasStart: true, hasEnd: true, inclusive: true}
}

// ToThrough selects indices in the closed interval [0, end].
func ToThrough(end int) Span {
	return Span{end: end, hasEnd: true, inclusive: true}
}

// normalize resolves the span against an axis extent, returning the
// starting index and the run length. Empty and out-of-bounds selections
// are rejected.
func (sp Span) normalize(extent int) (int, int, error) {
	start := 0
	if sp.hasStart {
		start = sp.start
	}

	end := extent
	if sp.hasEnd {
		end = sp.end
		if sp.inclusive {
			end++
		}
	}

	switch {
	case start < 0 || end < 0:
		return 0, 0, fmt.Errorf("%w: negative slice bound in %s", ErrIndexOutOfBounds, sp)
	case start >= end:
		return 0, 0, fmt.Errorf("%w: slice %s selects no elements", ErrIndexOutOfBounds, sp)
	case end > extent:
		return 0, 0, fmt.Errorf("%w: slice %s exceeds axis extent %d", ErrIndexOutOfBounds, sp, extent)
	}
	return start, end - start, nil
}

// String renders the span in range notation.
func (sp Span) String() string {
	s, e := "", ""
	if sp.hasStart {
		s = fmt.Sprintf("%d", sp.start)
	}
	if sp.hasEnd {
		e = fmt.Sprintf("%d", sp.end)
	}
	if sp.inclusive {
		return fmt.Sprintf("%s..=%s", s, e)
	}
	return fmt.Sprintf("%s..%s", s, e)
}
