// Package narray implements the core N-dimensional array model:
// shapes with row-major stride addressing, owned contiguous storage,
// the builder/strategy generation pipeline, and zero-copy read-only
// views with copy-out materialization.
//
// The public facade for this package is github.com/numgo-ml/numgo/narray.
package narray
