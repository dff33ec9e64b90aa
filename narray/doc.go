// Package narray is the public surface of numgo: shape-driven
// construction of N-dimensional numeric arrays, deterministic and
// random value generation, and zero-copy read-only views over
// row-major storage.
//
// # Basic Usage
//
//	import "github.com/numgo-ml/numgo/narray"
//
//	func main() {
//	    v, err := narray.Vector[float64](4).LinSpace(1.0, 3.0, 4).Generate()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    m, err := narray.Matrix[int](2, 3).Range(0, 6).Generate()
//	    row, err := m.Row(1)         // zero-copy view
//	    owned := row.Materialize()   // contiguous owned copy
//	}
//
// # Builders
//
// Rank is fixed by the entry point: Vector, Matrix, Cube and Tensor4
// return a builder whose shape cannot change afterward. Exactly one
// fill strategy is chosen on the chain (Zeros, Ones, FullOf, Range,
// LinSpace, Uniform, UniformClosed, Normal, StandardNormal, Cauchy)
// and Generate consumes the builder. All parameter validation happens
// in Generate, before any allocation.
//
// Distribution-backed strategies accept a Seed for bit-for-bit
// reproducible output.
//
// # Views
//
// Slicing never copies: Slice, Index and Row return read-only windows
// that borrow the parent array. Materialize copies a window into a new
// owned array, which is required before elementwise arithmetic on a
// sliced operand. Column always materializes, because a column of a
// row-major matrix is not contiguous.
//
// # Errors
//
// All failures are typed sentinels checkable with errors.Is:
// ErrConfig for invalid construction parameters, ErrIndexOutOfBounds
// for index and slice violations, ErrShapeMismatch for elementwise
// operations on incompatible shapes.
package narray
