// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import (
	"crypto/sha256"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedAccumulation(t *testing.T) {
	g := New(1)
	require.Equal(t, uint64(1), g.Seed())

	// Integer
	g.AccumSeed(1)
	require.Equal(t, uint64(11295943761408656531), g.Seed())

	// Literal list
	AccumSeedRange(g, []int{1, 2, 3})
	require.Equal(t, uint64(18083823154816788002), g.Seed())

	// Strings
	g.AccumSeedString("Hello, World!")
	require.Equal(t, uint64(7880214006551886600), g.Seed())

	AccumSeedRange(g, []byte("Hello, World!"))
	require.Equal(t, uint64(11498166657420254716), g.Seed())

	// Sequences
	AccumSeedSeq(g, slices.Values([]int{1, 2, 3}))
	require.Equal(t, uint64(4175012130207295590), g.Seed())

	// Arrays
	arr := [3]int32{1, 2, 3}
	AccumSeedRange(g, arr[:])
	require.Equal(t, uint64(4326221722869819695), g.Seed())
}

func TestAccumulateSignExtends(t *testing.T) {
	a := New(5)
	AccumSeedRange(a, []int8{-3})

	b := New(5)
	b.AccumSeed(^uint64(2))

	require.Equal(t, uint64(12510420827408569985), a.Seed())
	require.Equal(t, a.Seed(), b.Seed())
}

func TestAccumulateNoCollisions(t *testing.T) {
	const N = 1000
	seen := make(map[uint64]uint64, N)
	for v := uint64(0); v < N; v++ {
		g := New(0)
		g.AccumSeed(v)
		prev, ok := seen[g.Seed()]
		require.Falsef(t, ok, "accumulating %d and %d produced the same seed", prev, v)
		seen[g.Seed()] = v
	}
}

func TestAccumulateOrderMatters(t *testing.T) {
	a, b := New(1), New(1)
	AccumSeedRange(a, []uint64{1, 2})
	AccumSeedRange(b, []uint64{2, 1})
	require.NotEqual(t, a.Seed(), b.Seed())

	// The same value twice uses two different primes
	c := New(1)
	c.AccumSeed(9)
	first := c.Seed()
	c.AccumSeed(9)
	require.NotEqual(t, first, c.Seed())
}

func TestPrimeTableWraps(t *testing.T) {
	require.Len(t, primes, 100)
	require.Equal(t, uint64(7211), primes[0])
	require.Equal(t, uint64(8111), primes[99])

	g := New(7)
	for i := uint64(0); i <= 100; i++ {
		g.AccumSeed(i)
	}
	require.Equal(t, uint64(101), g.primeIndex)
	require.Equal(t, uint64(2880841512576183071), g.Seed())
}

func TestAccumulateFixedSize(t *testing.T) {
	sum := Checksum256(sha256.Sum256([]byte("block")))

	a := New(3)
	a.AccumSeedValue(sum)

	b := New(3)
	for _, v := range sum {
		b.AccumSeed(uint64(v))
	}

	require.Equal(t, b.Seed(), a.Seed())
	require.Equal(t, uint64(len(sum)), a.primeIndex)

	cases := []struct {
		name string
		v    Byter
		size int
	}{
		{"checksum160", Checksum160{}, 20},
		{"checksum256", Checksum256{}, 32},
		{"checksum512", Checksum512{}, 64},
		{"signature", Signature{}, 66},
		{"public key", PublicKey{}, 34},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(1)
			g.AccumSeedValue(c.v)
			require.Equal(t, uint64(c.size), g.primeIndex)
		})
	}
}

func TestAccumulateEmpty(t *testing.T) {
	g := New(77)
	g.AccumSeedString("")
	g.AccumSeedBytes(nil)
	AccumSeedRange(g, []int(nil))
	require.Equal(t, uint64(77), g.Seed())
	require.Zero(t, g.primeIndex)
}
