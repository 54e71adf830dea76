// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import "math/bits"

// Rotation and shift constants of xoroshiro128+.
const (
	rotA  = 24
	shift = 16
	rotB  = 37
)

// Generator is a deterministic xoroshiro128+ generator with an accumulating
// seed.
//
// The state is derived from the seed by the first draw. From then on the seed
// no longer influences the output: accumulating more values still changes
// [Generator.Seed] but not the stream.
type Generator struct {
	seed       uint64
	state      [2]uint64
	started    bool
	primeIndex uint64
}

// New returns a generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the accumulated seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Started returns true once the first value has been drawn.
func (g *Generator) Started() bool {
	return g.started
}

// Next returns the next pseudo-random 64-bit value.
func (g *Generator) Next() uint64 {
	if !g.started {
		g.state[0] = mix(g.seed)
		g.state[1] = mix(g.state[0])
		g.started = true
	}

	s0, s1 := g.state[0], g.state[1]
	result := s0 + s1

	s1 ^= s0
	g.state[0] = bits.RotateLeft64(s0, rotA) ^ s1 ^ (s1 << shift)
	g.state[1] = bits.RotateLeft64(s1, rotB)
	return result
}

// Uint64 calls Next. It allows a generator to be used as a math/rand/v2
// Source.
func (g *Generator) Uint64() uint64 {
	return g.Next()
}
