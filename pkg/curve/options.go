package curve

import (
	"github.com/matzehuels/edgebend/pkg/errors"
)

// Polarity controls the curvature sign of each parallel-edge group.
type Polarity string

const (
	// PolarityFixed bends every group in its canonical direction, determined
	// only by the node IDs. This is the default.
	PolarityFixed Polarity = "fixed"
	// PolarityRandom mirrors each group with a sign drawn from a generator
	// seeded by Options.Seed. Cosmetic only: offsets within a group stay
	// symmetric, and the same seed reproduces the same mirroring.
	PolarityRandom Polarity = "random"
)

// Options configure curve generation. The zero value is not usable; start
// from DefaultOptions or pass nil to Generate for the defaults.
type Options struct {
	// Dist is the fraction of the edge length to travel from each endpoint
	// toward the other before branching perpendicular. Must be in (0, 1).
	Dist float64
	// Precision is the number of sample points per curve. Must be at least 2
	// so that every curve contains both endpoints.
	Precision int
	// Polarity selects fixed or randomized group mirroring.
	Polarity Polarity
	// Seed drives the random polarity. Unused when Polarity is fixed.
	Seed uint64
	// Workers is the number of goroutines sampling curves. Values below 2
	// mean sequential. Output is identical regardless of worker count.
	Workers int
}

var defaultOpts = Options{
	Dist:      0.2,
	Precision: 20,
	Polarity:  PolarityFixed,
	Workers:   1,
}

// DefaultOptions returns the default generation options: dist 0.2,
// precision 20, fixed polarity, sequential sampling.
func DefaultOptions() Options {
	return defaultOpts
}

// validate fails fast on out-of-range options so no per-edge work starts
// with a configuration that would produce malformed curves.
func (o *Options) validate() error {
	if o.Dist <= 0 || o.Dist >= 1 {
		return errors.New(errors.ErrCodeInvalidDist, "dist must be in (0, 1), got %g", o.Dist)
	}
	if o.Precision < 2 {
		return errors.New(errors.ErrCodeInvalidPrecision, "precision must be at least 2, got %d", o.Precision)
	}
	switch o.Polarity {
	case PolarityFixed, PolarityRandom:
	default:
		return errors.New(errors.ErrCodeInvalidPolarity, "polarity must be %q or %q, got %q",
			PolarityFixed, PolarityRandom, o.Polarity)
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidWorkers, "workers must not be negative, got %d", o.Workers)
	}
	return nil
}
