package random

import (
	"fmt"
	"math"
)

// Sampler maps a randomness source to a single variate. Parameters are
// validated by the constructors; Sample never fails.
type Sampler interface {
	Sample(src *Source) float64
}

// Uniform draws from [Low, High) or, when Closed, from [Low, High].
type Uniform struct {
	Low    float64
	High   float64
	Closed bool
}

// NewUniform validates and returns a Uniform sampler. The half-open
// variant requires low < high; the closed variant allows low == high
// (a degenerate single-point interval).
func NewUniform(low, high float64, closed bool) (Uniform, error) {
	if closed {
		if low > high {
			return Uniform{}, fmt.Errorf("%w: uniform bounds low=%v > high=%v", ErrInvalidParam, low, high)
		}
	} else if low >= high {
		return Uniform{}, fmt.Errorf("%w: uniform bounds low=%v >= high=%v", ErrInvalidParam, low, high)
	}
	return Uniform{Low: low, High: high, Closed: closed}, nil
}

// Sample scales a canonical variate into the configured interval. The
// closed variant draws the canonical variate on a closed [0, 1]
// lattice, so High itself is reachable; the half-open variant never
// returns High.
func (u Uniform) Sample(src *Source) float64 {
	if u.Closed {
		return u.Low + src.Float64Closed()*(u.High-u.Low)
	}
	return u.Low + src.Float64()*(u.High-u.Low)
}

// Normal draws from a Gaussian with the given mean and standard
// deviation, via the Box-Muller transform of two independent uniform
// variates.
type Normal struct {
	Mean   float64
	StdDev float64
}

// NewNormal validates and returns a Normal sampler. stddev must be
// strictly positive.
func NewNormal(mean, stddev float64) (Normal, error) {
	if stddev <= 0 {
		return Normal{}, fmt.Errorf("%w: normal stddev=%v must be > 0", ErrInvalidParam, stddev)
	}
	return Normal{Mean: mean, StdDev: stddev}, nil
}

// StandardNormal returns a Normal sampler with mean 0 and stddev 1.
func StandardNormal() Normal {
	return Normal{Mean: 0, StdDev: 1}
}

// Sample applies Box-Muller: z = sqrt(-2 ln u1) * cos(2 pi u2). One of
// the two produced variates is discarded so that each call consumes a
// fixed number of draws from the source.
func (n Normal) Sample(src *Source) float64 {
	u1 := src.Float64Open()
	u2 := src.Float64()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	return n.Mean + n.StdDev*z
}

// Cauchy draws from a Cauchy distribution with the given median and
// scale.
type Cauchy struct {
	Median float64
	Scale  float64
}

// NewCauchy validates and returns a Cauchy sampler. scale must be
// strictly positive.
func NewCauchy(median, scale float64) (Cauchy, error) {
	if scale <= 0 {
		return Cauchy{}, fmt.Errorf("%w: cauchy scale=%v must be > 0", ErrInvalidParam, scale)
	}
	return Cauchy{Median: median, Scale: scale}, nil
}

// Sample inverts the Cauchy CDF: median + scale * tan(pi * (u - 1/2))
// for u in (0, 1).
func (c Cauchy) Sample(src *Source) float64 {
	u := src.Float64Open()
	return c.Median + c.Scale*math.Tan(math.Pi*(u-0.5))
}
