// Package cmd - catalog listing commands
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// categoriesCmd lists the benchmark categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List application categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(context.Background())
		if err != nil {
			return err
		}
		defer cleanup()
		return render(cmd.OutOrStdout(), eng.Categories())
	},
}

// featuresCmd lists the known features and their impact
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List features and their load multipliers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(context.Background())
		if err != nil {
			return err
		}
		defer cleanup()
		return render(cmd.OutOrStdout(), eng.Features())
	},
}

// benchmarkCmd shows one benchmark, or all of them without an argument
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark [category]",
	Short: "Show category benchmarks",
	Long: `Show the usage benchmark of a category. Without a category every
benchmark is listed.

Examples:
  capcost benchmark
  capcost benchmark fintech`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(context.Background())
		if err != nil {
			return err
		}
		defer cleanup()

		if len(args) == 0 {
			return render(cmd.OutOrStdout(), eng.Benchmarks())
		}
		b, err := eng.Benchmark(args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), b)
	},
}
