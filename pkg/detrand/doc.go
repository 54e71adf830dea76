// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package detrand is a deterministic pseudo-random number generator for
// consensus code. Every node that feeds a [Generator] the same seed and the
// same accumulated inputs draws the same sequence, bit for bit, on every
// platform.
//
// A Generator folds inputs into a 64-bit seed using a splitmix64 finalizer and
// a rotating table of primes, expands the seed into 128 bits of state on the
// first draw, and then runs xoroshiro128+. It is fast and statistically good
// but it is not a CSPRNG, and it is not safe for concurrent use.
package detrand
