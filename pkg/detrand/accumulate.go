// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Byter is a value that can be folded into a seed as a sequence of bytes.
type Byter interface {
	Bytes() []byte
}

// Checksum160 is a 20-byte digest, such as RIPEMD-160.
type Checksum160 [20]byte

// Checksum256 is a 32-byte digest, such as SHA-256.
type Checksum256 [32]byte

// Checksum512 is a 64-byte digest, such as SHA-512.
type Checksum512 [64]byte

// Signature is a signature blob: one type byte followed by 65 bytes of
// signature data.
type Signature [66]byte

// PublicKey is a public key blob: one type byte followed by a 33-byte
// compressed key.
type PublicKey [34]byte

func (c Checksum160) Bytes() []byte { return c[:] }
func (c Checksum256) Bytes() []byte { return c[:] }
func (c Checksum512) Bytes() []byte { return c[:] }
func (s Signature) Bytes() []byte   { return s[:] }
func (k PublicKey) Bytes() []byte   { return k[:] }

// AccumSeed folds v into the seed. Each call consumes the next entry of the
// prime table, so the order of calls matters.
func (g *Generator) AccumSeed(v uint64) {
	g.seed = mix(g.seed ^ v*g.nextPrime())
}

// AccumSeedBytes folds each byte of b into the seed, in order.
func (g *Generator) AccumSeedBytes(b []byte) {
	for _, v := range b {
		g.AccumSeed(uint64(v))
	}
}

// AccumSeedString folds each byte of s into the seed, in order.
func (g *Generator) AccumSeedString(s string) {
	for i := 0; i < len(s); i++ {
		g.AccumSeed(uint64(s[i]))
	}
}

// AccumSeedValue folds the bytes of v into the seed.
func (g *Generator) AccumSeedValue(v Byter) {
	g.AccumSeedBytes(v.Bytes())
}

func (g *Generator) nextPrime() uint64 {
	p := primes[g.primeIndex%uint64(len(primes))]
	g.primeIndex++
	return p
}

// AccumSeedRange folds each element of s into the seed, in order. Signed
// values are sign-extended to 64 bits.
func AccumSeedRange[S ~[]E, E constraints.Integer](g *Generator, s S) {
	for _, v := range s {
		g.AccumSeed(uint64(v))
	}
}

// AccumSeedSeq folds every value produced by seq into the seed, in order.
func AccumSeedSeq[E constraints.Integer](g *Generator, seq iter.Seq[E]) {
	for v := range seq {
		g.AccumSeed(uint64(v))
	}
}
