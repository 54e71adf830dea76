// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/detrand/internal/logging"
	"gitlab.com/accumulatenetwork/detrand/internal/replay"
	"gitlab.com/accumulatenetwork/detrand/pkg/errors"
)

var cmdMain = &cobra.Command{
	Use:               "detrand",
	Short:             "Deterministic random number generator",
	Run:               printUsageAndExit1,
	PersistentPreRunE: setupLogging,
}

var flagMain struct {
	Seed   uint64
	Env    envFlag
	Accum  inputsFlag
	Debug  bool
	Logger *slog.Logger
}

func init() {
	flags := cmdMain.PersistentFlags()
	flags.Uint64VarP(&flagMain.Seed, "seed", "s", 1, "Initial seed")
	flags.Var(&flagMain.Env, "env", "Seed from a block reference: sequence,prefix")
	flags.Var(&flagMain.Accum, "accum", "Accumulate a value into the seed (repeatable, applied in order): N, int:N, string:S, blob:HEX, blob:b58:B58, or ALGORITHM:TEXT")
	flags.String("log-level", "error;replay=info", "Log level, optionally per module")
	flags.String("log-format", logging.LogFormatPlain, "Log format (plain, text, json)")
	flags.BoolVar(&flagMain.Debug, "debug", false, "Print error call stacks")

	viper.SetEnvPrefix("DETRAND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"seed", "log-level", "log-format"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagMain.Debug {
		errors.EnableLocationTracking()
	} else {
		errors.DisableLocationTracking()
	}

	logger, err := logging.New(cmd.ErrOrStderr(), viper.GetString("log-format"), viper.GetString("log-level"), !color.NoColor)
	if err != nil {
		return err
	}
	flagMain.Logger = logger
	return nil
}

// newPlan returns a plan for the generator described by the persistent flags.
func newPlan(cmd *cobra.Command) (*replay.Plan, error) {
	plan := new(replay.Plan)
	if flagMain.Env.Value != nil {
		// viper reports a seed from either the flag or DETRAND_SEED
		if cmd.Flags().Changed("seed") || viper.IsSet("seed") {
			return nil, errors.BadRequest.With("a seed (--seed or DETRAND_SEED) and --env cannot be combined")
		}
		env := *flagMain.Env.Value
		plan.Environment = &env
	} else {
		seed := viper.GetUint64("seed")
		plan.Seed = &seed
	}
	plan.Accumulate = append(plan.Accumulate, flagMain.Accum...)
	return plan, nil
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, color.RedString("Error: ")+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		err = errors.UnknownError.Skip(1).Wrap(err)
		if flagMain.Debug {
			fatalf("%+v", err)
		}
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
