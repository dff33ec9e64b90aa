package narray

import (
	"fmt"
	"math"

	"github.com/numgo-ml/numgo/internal/random"
)

// strategyKind tags the fill strategy chosen on a Builder. One
// generation routine consumes the tag, so adding a strategy never adds
// a type per (rank, strategy) pair.
type strategyKind int

const (
	strategyNone strategyKind = iota
	strategyZeros
	strategyOnes
	strategyFullOf
	strategyRange
	strategyLinSpace
	strategyUniform
	strategyNormal
	strategyCauchy
)

func (k strategyKind) String() string {
	switch k {
	case strategyNone:
		return "none"
	case strategyZeros:
		return "zeros"
	case strategyOnes:
		return "ones"
	case strategyFullOf:
		return "full_of"
	case strategyRange:
		return "range"
	case strategyLinSpace:
		return "linspace"
	case strategyUniform:
		return "uniform"
	case strategyNormal:
		return "normal"
	case strategyCauchy:
		return "cauchy"
	default:
		return "unknown"
	}
}

// Builder accumulates a shape and a fill strategy, then produces an
// owned Storage. Rank and shape are fixed when the Builder is created;
// exactly one strategy may be chosen; Generate consumes the Builder.
//
// All parameter validation happens in Generate, before any allocation:
// generation is fail-fast and never partial.
type Builder[T Numeric] struct {
	dims []int

	kind    strategyKind
	chosen  int // number of strategy calls, must end up exactly 1
	fullVal T
	start   float64
	stop    float64
	step    float64
	count   int
	low     float64
	high    float64
	closed  bool
	mean    float64
	stddev  float64
	median  float64
	scale   float64

	seed   int64
	seeded bool
	done   bool
}

// New returns a Builder for an array with the given axis extents. The
// rank is the number of extents and cannot change afterward.
func New[T Numeric](dims ...int) *Builder[T] {
	return &Builder[T]{dims: append([]int(nil), dims...)}
}

// Zeros fills every element with zero.
func (b *Builder[T]) Zeros() *Builder[T] {
	b.kind = strategyZeros
	b.chosen++
	return b
}

// Ones fills every element with one.
func (b *Builder[T]) Ones() *Builder[T] {
	b.kind = strategyOnes
	b.chosen++
	return b
}

// FullOf fills every element with value.
func (b *Builder[T]) FullOf(value T) *Builder[T] {
	b.kind = strategyFullOf
	b.chosen++
	b.fullVal = value
	return b
}

// Range fills the buffer row-major with the half-open arithmetic
// sequence start, start+step, ... strictly below stop. The step
// defaults to 1; the sequence length must match the declared shape's
// element count.
func (b *Builder[T]) Range(start, stop float64, step ...float64) *Builder[T] {
	b.kind = strategyRange
	b.chosen++
	b.start = start
	b.stop = stop
	b.step = 1
	if len(step) > 0 {
		b.step = step[0]
	}
	return b
}

// LinSpace fills the buffer row-major with count evenly spaced points
// from start to stop, both endpoints included (count == 1 yields just
// start). count must match the declared shape's element count.
func (b *Builder[T]) LinSpace(start, stop float64, count int) *Builder[T] {
	b.kind = strategyLinSpace
	b.chosen++
	b.start = start
	b.stop = stop
	b.count = count
	return b
}

// Uniform fills with independent draws from the half-open interval
// [low, high).
func (b *Builder[T]) Uniform(low, high float64) *Builder[T] {
	b.kind = strategyUniform
	b.chosen++
	b.low = low
	b.high = high
	b.closed = false
	return b
}

// UniformClosed fills with independent draws from the closed interval
// [low, high]; high itself is reachable.
func (b *Builder[T]) UniformClosed(low, high float64) *Builder[T] {
	b.kind = strategyUniform
	b.chosen++
	b.low = low
	b.high = high
	b.closed = true
	return b
}

// Normal fills with independent Gaussian draws.
func (b *Builder[T]) Normal(mean, stddev float64) *Builder[T] {
	b.kind = strategyNormal
	b.chosen++
	b.mean = mean
	b.stddev = stddev
	return b
}

// StandardNormal fills with independent Gaussian draws with mean 0 and
// stddev 1.
func (b *Builder[T]) StandardNormal() *Builder[T] {
	return b.Normal(0, 1)
}

// Cauchy fills with independent Cauchy draws.
func (b *Builder[T]) Cauchy(median, scale float64) *Builder[T] {
	b.kind = strategyCauchy
	b.chosen++
	b.median = median
	b.scale = scale
	return b
}

// Seed pins the randomness seed so that distribution-backed strategies
// are bit-for-bit reproducible. Without it each Generate draws a fresh
// seed.
func (b *Builder[T]) Seed(seed int64) *Builder[T] {
	b.seed = seed
	b.seeded = true
	return b
}

// Generate validates the accumulated configuration and produces the
// array. It consumes the Builder: any further Generate call fails with
// a configuration error.
func (b *Builder[T]) Generate() (*Storage[T], error) {
	if b.done {
		return nil, fmt.Errorf("%w: builder already consumed", ErrConfig)
	}
	b.done = true

	shape, err := NewShape(b.dims...)
	if err != nil {
		return nil, err
	}
	size := shape.NumElements()

	switch b.chosen {
	case 0:
		return nil, fmt.Errorf("%w: no fill strategy chosen", ErrConfig)
	case 1:
		// Exactly one strategy, as required.
	default:
		return nil, fmt.Errorf("%w: fill strategy chosen more than once", ErrConfig)
	}

	switch b.kind {
	case strategyZeros:
		return fromFunc(shape, func(int) T { return 0 }), nil

	case strategyOnes:
		return fromFunc(shape, func(int) T { return 1 }), nil

	case strategyFullOf:
		v := b.fullVal
		return fromFunc(shape, func(int) T { return v }), nil

	case strategyRange:
		return b.generateRange(shape, size)

	case strategyLinSpace:
		return b.generateLinSpace(shape, size)

	case strategyUniform, strategyNormal, strategyCauchy:
		return b.generateSampled(shape, size)

	default:
		return nil, fmt.Errorf("%w: unknown strategy", ErrConfig)
	}
}

func (b *Builder[T]) generateRange(shape Shape, size int) (*Storage[T], error) {
	if b.start >= b.stop {
		return nil, fmt.Errorf("%w: range start=%v must be < stop=%v", ErrConfig, b.start, b.stop)
	}
	if b.step <= 0 {
		return nil, fmt.Errorf("%w: range step=%v must be > 0", ErrConfig, b.step)
	}

	count := int(math.Ceil((b.stop - b.start) / b.step))
	if count != size {
		return nil, fmt.Errorf("%w: range yields %d elements, shape %v holds %d", ErrConfig, count, shape, size)
	}

	start, step := b.start, b.step
	return fromFunc(shape, func(k int) T {
		return T(start + float64(k)*step)
	}), nil
}

func (b *Builder[T]) generateLinSpace(shape Shape, size int) (*Storage[T], error) {
	if b.count < 1 {
		return nil, fmt.Errorf("%w: linspace count=%d must be >= 1", ErrConfig, b.count)
	}
	if b.count != size {
		return nil, fmt.Errorf("%w: linspace yields %d elements, shape %v holds %d", ErrConfig, b.count, shape, size)
	}

	start, stop := b.start, b.stop
	if b.count == 1 {
		return fromFunc(shape, func(int) T { return T(start) }), nil
	}

	last := b.count - 1
	step := (stop - start) / float64(last)
	return fromFunc(shape, func(k int) T {
		// Pin the final point so stop is hit exactly despite float
		// accumulation.
		if k == last {
			return T(stop)
		}
		return T(start + float64(k)*step)
	}), nil
}

// generateSampled fills sequentially from one seeded source: draws
// depend on their position in the variate stream, so a parallel fill
// would break seed reproducibility.
func (b *Builder[T]) generateSampled(shape Shape, size int) (*Storage[T], error) {
	sampler, err := b.sampler()
	if err != nil {
		return nil, err
	}

	seed := b.seed
	if !b.seeded {
		seed = random.Seed()
	}
	src := random.NewSource(seed)

	data := make([]T, size)
	for k := range data {
		data[k] = T(sampler.Sample(src))
	}
	return fromSlice(shape, data), nil
}

func (b *Builder[T]) sampler() (random.Sampler, error) {
	var (
		sampler random.Sampler
		err     error
	)
	switch b.kind {
	case strategyUniform:
		sampler, err = random.NewUniform(b.low, b.high, b.closed)
	case strategyNormal:
		sampler, err = random.NewNormal(b.mean, b.stddev)
	case strategyCauchy:
		sampler, err = random.NewCauchy(b.median, b.scale)
	default:
		return nil, fmt.Errorf("%w: strategy %s is not distribution-backed", ErrConfig, b.kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfig, err)
	}
	return sampler, nil
}
