package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/oliverbestmann/erased"
	"github.com/oliverbestmann/erased/internal/bench"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "erasedbench",
		Short: "Compare concrete and erased traversal",
		Long: `erasedbench sums up a slice of integers using a plain range loop,
inline and heap allocated erased cursors, a cursor range view and a
bound location, and reports timings and cursor heap usage per scenario.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./erasedbench.yaml)")
	flags.Int("elements", 1<<16, "number of elements to traverse")
	flags.Int("rounds", 100, "number of rounds per scenario")
	flags.StringSlice("scenario", nil, "scenarios to run (default: all)")
	flags.String("profile", "none", "profile to record: none, cpu or mem")
	flags.String("profile-path", ".", "directory to write the profile to")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Bool("trace", false, "log every cursor copy, move and release")

	return cmd
}

func run(stdout, stderr io.Writer, cfg config) error {
	level := slog.LevelInfo
	if cfg.Verbose || cfg.Trace {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Trace {
		erased.SetTraceLogger(logger)
		defer erased.SetTraceLogger(nil)
	}

	scenarios, ok := bench.Lookup(cfg.Scenarios)
	if !ok {
		return fmt.Errorf("unknown scenario in %s", strings.Join(cfg.Scenarios, ", "))
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.ProfilePath), profile.Quiet).Stop()
	}

	values := make([]int, cfg.Elements)
	for idx := range values {
		values[idx] = idx
	}

	logger.Info("Running scenarios",
		slog.Int("scenarios", len(scenarios)),
		slog.Int("elements", cfg.Elements),
		slog.Int("rounds", cfg.Rounds),
	)

	results := bench.Run(logger, scenarios, values, cfg.Rounds)

	return printResults(stdout, results)
}

func printResults(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(tw, "scenario\tsum\taverage\tmin\tmax\tallocs\tfrees\t")
	for _, result := range results {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\t%d\t\n",
			result.Scenario,
			result.Sum,
			result.Timings.MovingAverage,
			result.Timings.Min,
			result.Timings.Max,
			result.Heap.Allocs,
			result.Heap.Frees,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return nil
}
