package initializers

import "math/rand/v2"

// Source is where all randomness comes from. *rand.Rand from math/rand/v2 satisfies it, which
// allows seeding with rand.New(rand.NewPCG(a, b)) for reproducible weights.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

type global struct{}

func (global) Float64() float64     { return rand.Float64() }
func (global) NormFloat64() float64 { return rand.NormFloat64() }

// Global returns a Source backed by the top-level functions of math/rand/v2. It is safe for
// concurrent use and randomly seeded.
func Global() Source {
	return global{}
}

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	src          Source
	lower, upper float64
}

// UniformRNG returns an RNG that gives values uniformly spread between its bounds, which can be
// set by Bounds.
func UniformRNG(src Source) *uniform {
	return &uniform{src, defaultValue["uniform-lower"], defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for UniformRNG. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.src.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	src  Source
	µ, σ float64
}

// NormalRNG returns an RNG that gives values within a normal distribution. The center and
// standard deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for "normal-mean" and
// "normal-sd".
func NormalRNG(src Source) *normal {
	return &normal{src, defaultValue["normal-mean"], defaultValue["normal-sd"]}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Gen is the implementation of RNG for NormalRNG. It returns a random number.
func (n *normal) Gen() float64 {
	return n.src.NormFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

// TruncNormalRNG returns an RNG that gives values within a truncated normal distribution. The
// distribution is truncated at "trunc-sds" standard deviations (2, unless changed by
// SetDefault). The center and standard deviation can be set in the same way as NormalRNG.
func TruncNormalRNG(src Source) *truncNormal {
	return &truncNormal{NormalRNG(src), defaultValue["trunc-sds"]}
}

// SD sets the standard deviation before truncation, returning the truncated RNG.
func (t *truncNormal) SD(sd float64) *truncNormal {
	t.normal.SD(sd)
	return t
}

// Mean sets the center of the distribution, returning the truncated RNG.
func (t *truncNormal) Mean(mean float64) *truncNormal {
	t.normal.Mean(mean)
	return t
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will panic if given
// sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormalRNG. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.src.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
