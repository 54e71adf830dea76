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

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/detrand/internal/replay"
)

var cmdSeed = &cobra.Command{
	Use:   "seed",
	Short: "Print the accumulated seed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		plan, err := newPlan(cmd)
		check(err)
		g, err := plan.Generator()
		check(err)
		fmt.Fprintln(cmd.OutOrStdout(), g.Seed())
	},
}

var cmdNext = &cobra.Command{
	Use:   "next [count]",
	Short: "Draw raw 64-bit values",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDraw(cmd, replay.Draw{Op: replay.OpNext, Count: parseCount(args, 0)})
	},
}

var cmdDouble = &cobra.Command{
	Use:   "double [count]",
	Short: "Draw values in [0, 1)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDraw(cmd, replay.Draw{Op: replay.OpDouble, Count: parseCount(args, 0)})
	},
}

var cmdRange = &cobra.Command{
	Use:   "range <min> <max> [count]",
	Short: "Draw integers in [min, max]",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		lo, err := strconv.ParseInt(args[0], 0, 64)
		checkf(err, "invalid minimum %q", args[0])
		hi, err := strconv.ParseInt(args[1], 0, 64)
		checkf(err, "invalid maximum %q", args[1])
		runDraw(cmd, replay.Draw{Op: replay.OpRange, Min: lo, Max: hi, Count: parseCount(args, 2)})
	},
}

var cmdShuffle = &cobra.Command{
	Use:   "shuffle <item>...",
	Short: "Shuffle the items",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDraw(cmd, replay.Draw{Op: replay.OpShuffle, Items: args})
	},
}

var cmdSample = &cobra.Command{
	Use:   "sample <count> <item>...",
	Short: "Draw items with replacement",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		checkf(err, "invalid count %q", args[0])
		runDraw(cmd, replay.Draw{Op: replay.OpSample, Count: n, Items: args[1:]})
	},
}

func init() {
	cmdMain.AddCommand(
		cmdSeed,
		cmdNext,
		cmdDouble,
		cmdRange,
		cmdShuffle,
		cmdSample,
	)
}

func parseCount(args []string, i int) int {
	if len(args) <= i {
		return 1
	}
	n, err := strconv.Atoi(args[i])
	checkf(err, "invalid count %q", args[i])
	if n < 1 {
		fatalf("count must be positive, got %d", n)
	}
	return n
}

func runDraw(cmd *cobra.Command, draw replay.Draw) {
	plan, err := newPlan(cmd)
	check(err)
	plan.Draws = []replay.Draw{draw}

	r, err := plan.Run(cmd.Context(), flagMain.Logger)
	check(err)

	out := cmd.OutOrStdout()
	for _, d := range r.Draws {
		switch d.Op {
		case replay.OpShuffle, replay.OpSample:
			fmt.Fprintln(out, strings.Join(d.Values, " "))
		default:
			for _, v := range d.Values {
				fmt.Fprintln(out, v)
			}
		}
	}
}
