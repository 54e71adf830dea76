// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package digest computes the fixed-size digests that are folded into a
// generator's seed.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Required for Hash160
)

// Algorithm identifies a digest algorithm.
type Algorithm string

const (
	AlgorithmSHA256    Algorithm = "sha256"
	AlgorithmSHA512    Algorithm = "sha512"
	AlgorithmRIPEMD160 Algorithm = "ripemd160"
	AlgorithmHash160   Algorithm = "hash160"
	AlgorithmKeccak256 Algorithm = "keccak256"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{
	AlgorithmSHA256,
	AlgorithmSHA512,
	AlgorithmRIPEMD160,
	AlgorithmHash160,
	AlgorithmKeccak256,
}

// ParseAlgorithm parses an algorithm name, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(s))
	for _, b := range Algorithms {
		if a == b {
			return a, nil
		}
	}
	return "", errors.BadRequest.WithFormat("unknown digest algorithm %q", s)
}

// Sum computes the digest of b with the given algorithm.
func Sum(alg Algorithm, b []byte) (detrand.Byter, error) {
	switch alg {
	case AlgorithmSHA256:
		return SHA256(b), nil
	case AlgorithmSHA512:
		return SHA512(b), nil
	case AlgorithmRIPEMD160:
		return RIPEMD160(b), nil
	case AlgorithmHash160:
		return Hash160(b), nil
	case AlgorithmKeccak256:
		return Keccak256(b), nil
	default:
		return nil, errors.BadRequest.WithFormat("unknown digest algorithm %q", alg)
	}
}

func SHA256(b []byte) detrand.Checksum256 {
	return sha256.Sum256(b)
}

func SHA512(b []byte) detrand.Checksum512 {
	return sha512.Sum512(b)
}

func RIPEMD160(b []byte) detrand.Checksum160 {
	var c detrand.Checksum160
	h := ripemd160.New()
	_, _ = h.Write(b)
	h.Sum(c[:0])
	return c
}

// Hash160 returns RIPEMD160(SHA256(b)), as used for Bitcoin addresses.
func Hash160(b []byte) detrand.Checksum160 {
	var c detrand.Checksum160
	copy(c[:], btcutil.Hash160(b))
	return c
}

// Keccak256 returns the legacy (pre-SHA3) Keccak-256 digest used by Ethereum.
func Keccak256(b []byte) detrand.Checksum256 {
	return detrand.Checksum256(crypto.Keccak256Hash(b))
}

// DecodeBlob decodes a key, signature, or other binary blob. Blobs prefixed
// with "b58:" are base58, "mb:" are multibase, and "mh:" are multibase-encoded
// multihashes, which decode to their digest. Everything else is hex with an
// optional "0x".
func DecodeBlob(s string) ([]byte, error) {
	switch {
	case strings.HasPrefix(s, "b58:"):
		b, err := base58.Decode(s[4:])
		if err != nil {
			return nil, errors.EncodingError.WithFormat("decode base58: %w", err)
		}
		return b, nil

	case strings.HasPrefix(s, "mb:"):
		_, b, err := multibase.Decode(s[3:])
		if err != nil {
			return nil, errors.EncodingError.WithFormat("decode multibase: %w", err)
		}
		return b, nil

	case strings.HasPrefix(s, "mh:"):
		_, b, err := multibase.Decode(s[3:])
		if err != nil {
			return nil, errors.EncodingError.WithFormat("decode multibase: %w", err)
		}
		mh, err := multihash.Decode(b)
		if err != nil {
			return nil, errors.EncodingError.WithFormat("decode multihash: %w", err)
		}
		return mh.Digest, nil
	}

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("decode hex: %w", err)
	}
	return b, nil
}
