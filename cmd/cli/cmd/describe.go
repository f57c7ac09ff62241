// Package cmd - describe command
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"capcost/core/benchmarks"
	"capcost/core/engine"
	"capcost/core/output"
	"capcost/core/ui"
)

var (
	descMonth6    int64
	descMonth12   int64
	descRegion    string
	descReference []string
)

// describeCmd classifies a free-text description and estimates it
var describeCmd = &cobra.Command{
	Use:   "describe <description>",
	Short: "Estimate capacity and cost from a product description",
	Long: `Classify a product description, then project and price it at the
month 6 audience. A Gemini API key enables the external classifier;
without one the description is analyzed with keywords.

Examples:
  capcost describe "A Notion-like app for restaurant recipes" --month6 2000 --month12 8000
  capcost describe "Marketplace for boat rentals with chat" --month6 5000 --reference airbnb.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().Int64Var(&descMonth6, "month6", 0, "target MAU at month 6")
	describeCmd.Flags().Int64Var(&descMonth12, "month12", 0, "target MAU at month 12")
	describeCmd.Flags().StringVarP(&descRegion, "region", "r", string(benchmarks.RegionBrazil), "primary region (brazil, latam, us, europe, global)")
	describeCmd.Flags().StringSliceVar(&descReference, "reference", nil, "comparable apps, by name or domain")
	_ = describeCmd.MarkFlagRequired("month6")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	eng, cleanup, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	req := engine.DescriptionRequest{
		Description:   strings.Join(args, " "),
		TargetUsers:   engine.TargetUsers{Month6: descMonth6, Month12: descMonth12},
		Region:        benchmarks.Region(strings.ToLower(descRegion)),
		ReferenceApps: descReference,
	}

	// The spinner only decorates terminal output
	var spinner *ui.Spinner
	if output.Format(strings.ToLower(outputFormat)) != output.FormatJSON {
		spinner = ui.NewWriter(cmd.ErrOrStderr(), noColor).NewSpinner("Analyzing description...")
		spinner.Start()
	}

	resp, err := eng.Estimate(ctx, req)
	if spinner != nil {
		spinner.Stop(err == nil)
	}
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), resp)
}
