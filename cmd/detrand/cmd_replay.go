// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/detrand/internal/replay"
)

var cmdReplay = &cobra.Command{
	Use:   "replay <plan>...",
	Short: "Run TOML, YAML, or JSON replay plans",
	Long: `Run one or more replay plans concurrently. Each plan's seed, environment,
and inputs are used as given; the global --seed, --env, and --accum flags are
ignored.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

var flagReplay struct {
	Output string
	Format string
}

func init() {
	cmdMain.AddCommand(cmdReplay)
	cmdReplay.Flags().StringVarP(&flagReplay.Output, "output", "o", "", "Write the result to a TOML, YAML, or JSON file instead of stdout (single plan only)")
	cmdReplay.Flags().StringVarP(&flagReplay.Format, "format", "f", "json", "Output format for stdout (json, table)")
}

func runReplay(cmd *cobra.Command, args []string) {
	if flagReplay.Output != "" && len(args) > 1 {
		fatalf("--output cannot be used with more than one plan")
	}

	plans := make([]*replay.Plan, len(args))
	for i, file := range args {
		var err error
		plans[i], err = replay.Load(file)
		check(err)
	}

	results, err := replay.RunAll(cmd.Context(), flagMain.Logger, plans)
	check(err)

	if flagReplay.Output != "" {
		check(results[0].Save(flagReplay.Output))
		return
	}

	switch flagReplay.Format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		for _, r := range results {
			check(enc.Encode(r))
		}

	case "table":
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Plan", "Seed", "Draw", "Op", "Values"})
		table.SetAutoWrapText(false)
		for i, r := range results {
			for j, d := range r.Draws {
				table.Append([]string{args[i], r.Seed, strconv.Itoa(j), string(d.Op), strings.Join(d.Values, " ")})
			}
		}
		table.Render()

	default:
		fatalf("unknown format %q", flagReplay.Format)
	}
}
