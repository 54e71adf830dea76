// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

func TestNextDouble(t *testing.T) {
	g := New(42)
	for _, expect := range []float64{
		0.08485680087049685,
		0.39027376636903754,
		0.2926740193461219,
		0.708824662975398,
		0.8789324621774233,
	} {
		require.Equal(t, expect, g.NextDouble())
	}
}

func TestNextDoubleUnitInterval(t *testing.T) {
	g := New(7)
	for i := 0; i < 10000; i++ {
		v := g.NextDouble()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestNextInRange(t *testing.T) {
	g := New(42)
	for _, expect := range []int64{18, 13, 15, 18, 11} {
		v, err := g.NextInRange(10, 20)
		require.NoError(t, err)
		require.Equal(t, expect, v)
	}
}

func TestInRangeLaw(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int64
	}{
		{"single", 5, 5},
		{"small", 10, 20},
		{"negative", -100, -1},
		{"straddle", -3, 3},
		{"large", math.MinInt64 / 2, math.MaxInt64 / 2},
		{"full", math.MinInt64, math.MaxInt64},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(uint64(c.lo))
			for i := 0; i < 1000; i++ {
				v, err := g.NextInRange(c.lo, c.hi)
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, c.lo)
				require.LessOrEqual(t, v, c.hi)
			}
		})
	}
}

func TestInRangeNarrowTypes(t *testing.T) {
	g := New(9)
	for i := 0; i < 1000; i++ {
		v, err := InRange(g, int8(-128), int8(127))
		require.NoError(t, err)
		_ = v // every int8 is in range

		u, err := InRange(g, uint8(250), uint8(255))
		require.NoError(t, err)
		require.GreaterOrEqual(t, u, uint8(250))
	}

	// The full uint64 range returns the raw draw
	a, b := New(3), New(3)
	v, err := InRange(a, uint64(0), uint64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, b.Next(), v)
}

func TestInvalidRange(t *testing.T) {
	g := New(42)
	_, err := g.NextInRange(20, 10)
	require.Error(t, err)
	require.ErrorIs(t, err, errors.InvalidRange)

	// Nothing was drawn
	require.False(t, g.Started())
}

func TestShuffle(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		g := New(42)
		str := []byte("Hello, World!")
		for _, expect := range []string{
			"llo,lrH!do eW",
			"Hlr ,ldoWel!o",
			"l,Woordl Hle!",
			"dllooe,lHr !W",
			"oeH!d,rllWo l",
		} {
			require.NoError(t, Shuffle(g, str))
			require.Equal(t, expect, string(str))
		}
	})

	t.Run("ints", func(t *testing.T) {
		g := New(42)
		vec := []int{1, 2, 3, 4, 5}
		for _, expect := range [][]int{
			{1, 2, 5, 4, 3},
			{4, 5, 1, 2, 3},
			{1, 4, 2, 3, 5},
			{1, 3, 5, 4, 2},
			{3, 5, 4, 1, 2},
		} {
			require.NoError(t, Shuffle(g, vec))
			require.Equal(t, expect, vec)
		}
	})
}

func TestShuffleIsPermutation(t *testing.T) {
	g := New(2024)
	for n := 1; n < 50; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i % 7
		}
		before := slices.Clone(s)

		require.NoError(t, Shuffle(g, s))
		require.Len(t, s, n)

		slices.Sort(s)
		slices.Sort(before)
		require.Equal(t, before, s)
	}
}

func TestShuffleEmpty(t *testing.T) {
	g := New(1)
	err := Shuffle(g, []string{})
	require.ErrorIs(t, err, errors.EmptyPopulation)
	require.False(t, g.Started())
}

func TestSample(t *testing.T) {
	g := New(999)
	pop := []byte("abcdef")
	for _, c := range []struct {
		n      int
		expect string
	}{
		{10, "edefbecbce"},
		{3, "acf"},
		{42, "debbcdcdcafeabdbdbcaaaeebfeafecdfecbcacdee"},
	} {
		s, err := Sample(g, c.n, pop)
		require.NoError(t, err)
		require.Equal(t, c.expect, string(s))
	}
}

func TestSampleLengthLaw(t *testing.T) {
	g := New(5)
	pop := []string{"x", "y", "z"}
	for n := 0; n < 100; n++ {
		s, err := Sample(g, n, pop)
		require.NoError(t, err)
		require.Len(t, s, n)
		for _, v := range s {
			require.Contains(t, pop, v)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	g := New(5)

	_, err := Sample(g, 3, []int{})
	require.ErrorIs(t, err, errors.EmptyPopulation)

	_, err = Sample(g, -1, []int{1})
	require.ErrorIs(t, err, errors.BadRequest)

	require.False(t, g.Started())
}
