// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package replay reproduces a generator's output from a declarative plan: how
// the generator is seeded, what is accumulated into it, and what is drawn.
package replay

import (
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand/digest"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

// Plan describes a generator and the values drawn from it.
type Plan struct {
	// Seed is the initial seed. If neither Seed nor Environment is set the
	// generator starts from seed 1.
	Seed *uint64 `json:"seed,omitempty" toml:"seed,omitempty" yaml:"seed,omitempty"`

	// Environment seeds the generator from a block reference.
	Environment *detrand.StaticEnvironment `json:"environment,omitempty" toml:"environment,omitempty" yaml:"environment,omitempty"`

	Accumulate []Input `json:"accumulate,omitempty" toml:"accumulate,omitempty" yaml:"accumulate,omitempty" validate:"dive"`
	Draws      []Draw  `json:"draws,omitempty" toml:"draws,omitempty" yaml:"draws,omitempty" validate:"dive"`
}

// Input is a single value folded into the seed. Exactly one field must be set.
type Input struct {
	Uint   *uint64 `json:"uint,omitempty" toml:"uint,omitempty" yaml:"uint,omitempty"`
	Int    *int64  `json:"int,omitempty" toml:"int,omitempty" yaml:"int,omitempty"`
	String *string `json:"string,omitempty" toml:"string,omitempty" yaml:"string,omitempty"`

	// Blob is decoded with [digest.DecodeBlob].
	Blob string `json:"blob,omitempty" toml:"blob,omitempty" yaml:"blob,omitempty"`

	Hash *HashInput `json:"hash,omitempty" toml:"hash,omitempty" yaml:"hash,omitempty"`
}

// HashInput accumulates the digest of Data.
type HashInput struct {
	Algorithm string `json:"algorithm" toml:"algorithm" yaml:"algorithm" validate:"digest-alg"`
	Data      string `json:"data" toml:"data" yaml:"data"`
}

// Op is a draw operation.
type Op string

const (
	OpNext    Op = "next"
	OpDouble  Op = "double"
	OpRange   Op = "range"
	OpShuffle Op = "shuffle"
	OpSample  Op = "sample"
)

// Draw is one or more values drawn with the same operation.
type Draw struct {
	Op Op `json:"op" toml:"op" yaml:"op" validate:"oneof=next double range shuffle sample"`

	// Count is the number of values drawn. Zero means one, except for sample
	// where it is the sample size. Shuffle ignores it. It cannot be negative.
	Count int `json:"count,omitempty" toml:"count,omitempty" yaml:"count,omitempty" validate:"gte=0"`

	Min   int64    `json:"min,omitempty" toml:"min,omitempty" yaml:"min,omitempty"`
	Max   int64    `json:"max,omitempty" toml:"max,omitempty" yaml:"max,omitempty"`
	Items []string `json:"items,omitempty" toml:"items,omitempty" yaml:"items,omitempty"`
}

// Generator builds the generator described by the plan and accumulates the
// plan's inputs into it. Nothing is drawn.
func (p *Plan) Generator() (*detrand.Generator, error) {
	var g *detrand.Generator
	switch {
	case p.Seed != nil && p.Environment != nil:
		return nil, errors.BadRequest.With("a plan cannot specify both a seed and an environment")
	case p.Seed != nil:
		g = detrand.New(*p.Seed)
	case p.Environment != nil:
		g = detrand.NewFromEnvironment(*p.Environment)
	default:
		g = detrand.New(1)
	}

	for i, in := range p.Accumulate {
		err := in.accumulate(g)
		if err != nil {
			return nil, errors.UnknownError.WithFormat("input %d: %w", i, err)
		}
	}
	return g, nil
}

func (in *Input) accumulate(g *detrand.Generator) error {
	var n int
	for _, set := range []bool{in.Uint != nil, in.Int != nil, in.String != nil, in.Blob != "", in.Hash != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return errors.BadRequest.WithFormat("an input must have exactly one value, got %d", n)
	}

	switch {
	case in.Uint != nil:
		g.AccumSeed(*in.Uint)

	case in.Int != nil:
		detrand.AccumSeedRange(g, []int64{*in.Int})

	case in.String != nil:
		g.AccumSeedString(*in.String)

	case in.Blob != "":
		b, err := digest.DecodeBlob(in.Blob)
		if err != nil {
			return errors.UnknownError.Wrap(err)
		}
		g.AccumSeedBytes(b)

	case in.Hash != nil:
		alg, err := digest.ParseAlgorithm(in.Hash.Algorithm)
		if err != nil {
			return errors.UnknownError.Wrap(err)
		}
		sum, err := digest.Sum(alg, []byte(in.Hash.Data))
		if err != nil {
			return errors.UnknownError.Wrap(err)
		}
		g.AccumSeedValue(sum)
	}
	return nil
}
