// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package detrand

const (
	mixIncrement = 0x9E3779B97F4A7C15
	mixMul1      = 0xBF58476D1CE4E5B9
	mixMul2      = 0x94D049BB133111EB
)

// mix is the splitmix64 finalizer. All arithmetic wraps.
func mix(x uint64) uint64 {
	z := x + mixIncrement
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}
