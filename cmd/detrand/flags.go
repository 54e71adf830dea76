// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/accumulatenetwork/detrand/internal/replay"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand/digest"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

type envFlag struct {
	Value *detrand.StaticEnvironment
}

func (f *envFlag) Type() string { return "sequence,prefix" }

func (f *envFlag) String() string {
	if f.Value == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.Value.Sequence, f.Value.BlockPrefix)
}

func (f *envFlag) Set(s string) error {
	seq, prefix, ok := strings.Cut(s, ",")
	if !ok {
		return errors.BadRequest.WithFormat("invalid environment %q, want sequence,prefix", s)
	}

	env := new(detrand.StaticEnvironment)
	var err error
	env.Sequence, err = strconv.ParseInt(strings.TrimSpace(seq), 0, 64)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid sequence number: %w", err)
	}
	env.BlockPrefix, err = strconv.ParseInt(strings.TrimSpace(prefix), 0, 64)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid prefix: %w", err)
	}
	f.Value = env
	return nil
}

// inputsFlag collects accumulated values in the order they are given.
type inputsFlag []replay.Input

func (f *inputsFlag) Type() string { return "kind:value" }

func (f *inputsFlag) String() string {
	var s []string
	for _, in := range *f {
		switch {
		case in.Uint != nil:
			s = append(s, strconv.FormatUint(*in.Uint, 10))
		case in.Int != nil:
			s = append(s, "int:"+strconv.FormatInt(*in.Int, 10))
		case in.String != nil:
			s = append(s, "string:"+*in.String)
		case in.Blob != "":
			s = append(s, "blob:"+in.Blob)
		case in.Hash != nil:
			s = append(s, in.Hash.Algorithm+":"+in.Hash.Data)
		}
	}
	return strings.Join(s, ",")
}

func (f *inputsFlag) Set(s string) error {
	in, err := parseInput(s)
	if err != nil {
		return err
	}
	*f = append(*f, in)
	return nil
}

func parseInput(s string) (replay.Input, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return replay.Input{}, errors.BadRequest.WithFormat("invalid value %q: %w", s, err)
		}
		return replay.Input{Uint: &v}, nil
	}

	switch kind {
	case "uint":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return replay.Input{}, errors.BadRequest.WithFormat("invalid uint %q: %w", value, err)
		}
		return replay.Input{Uint: &v}, nil

	case "int":
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return replay.Input{}, errors.BadRequest.WithFormat("invalid int %q: %w", value, err)
		}
		return replay.Input{Int: &v}, nil

	case "string", "str":
		return replay.Input{String: &value}, nil

	case "blob":
		if value == "" {
			return replay.Input{}, errors.BadRequest.With("empty blob")
		}
		return replay.Input{Blob: value}, nil
	}

	alg, err := digest.ParseAlgorithm(kind)
	if err != nil {
		return replay.Input{}, errors.BadRequest.WithFormat("unknown input kind %q", kind)
	}
	return replay.Input{Hash: &replay.HashInput{Algorithm: string(alg), Data: value}}, nil
}
