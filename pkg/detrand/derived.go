// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import (
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
	"golang.org/x/exp/constraints"
)

// NextDouble returns a value in [0, 1) built from the top 53 bits of the next
// draw.
func (g *Generator) NextDouble() float64 {
	return float64(g.Next()>>11) * 0x1p-53
}

// NextInRange returns a value in [lo, hi], inclusive. See [InRange].
func (g *Generator) NextInRange(lo, hi int64) (int64, error) {
	v, err := InRange(g, lo, hi)
	return v, errors.UnknownError.Wrap(err)
}

// InRange returns lo + next % (hi - lo + 1). The mapping is a plain modulo,
// biased towards low values when the span does not divide 2^64. Recorded
// streams depend on it, so it must not be replaced by rejection sampling.
//
// InRange fails without drawing if hi < lo.
func InRange[T constraints.Integer](g *Generator, lo, hi T) (T, error) {
	if hi < lo {
		return 0, errors.InvalidRange.WithFormat("invalid range [%d, %d]", lo, hi)
	}

	// Two's complement arithmetic gives the right span for signed types
	span := uint64(hi) - uint64(lo) + 1
	raw := g.Next()
	if span == 0 {
		// The range covers every 64-bit value
		return T(uint64(lo) + raw), nil
	}
	return T(uint64(lo) + raw%span), nil
}

// Shuffle permutes s in place. Every position i, first to last, is swapped
// with position next % len(s). The swap index is taken over the whole slice
// rather than the unshuffled suffix, so this is not the textbook Fisher-Yates
// distribution; recorded streams depend on it.
func Shuffle[S ~[]E, E any](g *Generator, s S) error {
	if len(s) == 0 {
		return errors.EmptyPopulation.With("cannot shuffle an empty collection")
	}

	n := uint64(len(s))
	for i := range s {
		j := g.Next() % n
		s[i], s[j] = s[j], s[i]
	}
	return nil
}

// Sample draws n elements of pop with replacement, in draw order.
func Sample[S ~[]E, E any](g *Generator, n int, pop S) ([]E, error) {
	if len(pop) == 0 {
		return nil, errors.EmptyPopulation.With("cannot sample an empty population")
	}
	if n < 0 {
		return nil, errors.BadRequest.WithFormat("invalid sample size %d", n)
	}

	size := uint64(len(pop))
	out := make([]E, n)
	for i := range out {
		out[i] = pop[g.Next()%size]
	}
	return out, nil
}
