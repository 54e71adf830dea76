// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package replay

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"gitlab.com/accumulatenetwork/detrand/internal/logging"
	"gitlab.com/accumulatenetwork/detrand/pkg/detrand"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the output of a plan.
type Result struct {
	// Seed is the accumulated seed, in decimal. TOML cannot represent every
	// uint64.
	Seed  string       `json:"seed" toml:"seed" yaml:"seed"`
	Draws []DrawResult `json:"draws" toml:"draws" yaml:"draws"`
}

// DrawResult is the output of a draw.
type DrawResult struct {
	Op     Op       `json:"op" toml:"op" yaml:"op"`
	Values []string `json:"values" toml:"values" yaml:"values"`
}

// Run builds the plan's generator and executes its draws in order. The logger
// may be nil.
func (p *Plan) Run(ctx context.Context, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logging.Module(logger, "replay")

	err := p.Validate()
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	g, err := p.Generator()
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	logger.DebugContext(ctx, "Built generator", "seed", g.Seed(), "inputs", len(p.Accumulate))

	r := new(Result)
	r.Seed = strconv.FormatUint(g.Seed(), 10)

	var total int64
	for i, d := range p.Draws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := d.run(g)
		if err != nil {
			return nil, errors.UnknownError.WithFormat("draw %d (%s): %w", i, d.Op, err)
		}

		logger.DebugContext(ctx, "Draw", "index", i, "op", d.Op, "values", len(values))
		total += int64(len(values))
		r.Draws = append(r.Draws, DrawResult{Op: d.Op, Values: values})
	}

	logger.InfoContext(ctx, "Replayed plan",
		"seed", r.Seed,
		"inputs", humanize.Comma(int64(len(p.Accumulate))),
		"draws", humanize.Comma(int64(len(p.Draws))),
		"values", humanize.Comma(total))
	return r, nil
}

// RunAll runs each plan on its own goroutine. Plans do not share generators,
// so the results are the same as running them in order. Records logged by a
// plan carry its index as "plan". The first failure cancels the remaining
// plans.
func RunAll(ctx context.Context, logger *slog.Logger, plans []*Plan) ([]*Result, error) {
	results := make([]*Result, len(plans))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range plans {
		g.Go(func() error {
			r, err := p.Run(logging.With(ctx, "plan", i), logger)
			if err != nil {
				return errors.UnknownError.WithFormat("plan %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Draw) count() int {
	if d.Count <= 0 {
		return 1
	}
	return d.Count
}

func (d *Draw) run(g *detrand.Generator) ([]string, error) {
	switch d.Op {
	case OpNext:
		values := make([]string, d.count())
		for i := range values {
			values[i] = strconv.FormatUint(g.Next(), 10)
		}
		return values, nil

	case OpDouble:
		values := make([]string, d.count())
		for i := range values {
			values[i] = strconv.FormatFloat(g.NextDouble(), 'g', -1, 64)
		}
		return values, nil

	case OpRange:
		values := make([]string, d.count())
		for i := range values {
			v, err := g.NextInRange(d.Min, d.Max)
			if err != nil {
				return nil, errors.UnknownError.Wrap(err)
			}
			values[i] = strconv.FormatInt(v, 10)
		}
		return values, nil

	case OpShuffle:
		values := slices.Clone(d.Items)
		err := detrand.Shuffle(g, values)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
		return values, nil

	case OpSample:
		values, err := detrand.Sample(g, d.Count, d.Items)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
		return values, nil

	default:
		return nil, errors.BadRequest.WithFormat("unknown draw operation %q", d.Op)
	}
}
