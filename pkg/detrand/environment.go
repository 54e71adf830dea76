// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import "encoding/binary"

// defaultSeed is the seed environment-derived generators start from.
const defaultSeed = 1

// Environment provides the block reference the executing transaction was
// built against. It is the default seed source in production.
type Environment interface {
	SequenceNumber() int64
	Prefix() int64
}

// NewFromEnvironment returns a generator seeded from the environment. The
// absolute values of the sequence number and then the prefix are accumulated
// into the default seed.
func NewFromEnvironment(env Environment) *Generator {
	g := New(defaultSeed)
	g.AccumSeed(abs(env.SequenceNumber()))
	g.AccumSeed(abs(env.Prefix()))
	return g
}

// abs returns |v|. |math.MinInt64| is 2^63, which fits.
func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// StaticEnvironment is an environment with fixed values.
type StaticEnvironment struct {
	Sequence    int64 `json:"sequence" toml:"sequence" yaml:"sequence"`
	BlockPrefix int64 `json:"prefix" toml:"prefix" yaml:"prefix"`
}

func (e StaticEnvironment) SequenceNumber() int64 { return e.Sequence }
func (e StaticEnvironment) Prefix() int64         { return e.BlockPrefix }

// BlockRef is a TAPOS-style block reference: the sequence number is the low
// 16 bits of the block number and the prefix is the little-endian 32-bit word
// at bytes 8 through 11 of the block ID.
type BlockRef struct {
	Number uint32
	ID     Checksum256
}

func (b BlockRef) SequenceNumber() int64 {
	return int64(b.Number & 0xFFFF)
}

func (b BlockRef) Prefix() int64 {
	return int64(binary.LittleEndian.Uint32(b.ID[8:12]))
}
