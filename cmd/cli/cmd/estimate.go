// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"capcost/core/benchmarks"
	"capcost/core/engine"
	"capcost/core/estimate"
)

var (
	estCategory  string
	estMAU       int64
	estFeatures  []string
	estMedia     bool
	estMediaSize float64
	estRealtime  bool
	estRegion    string
	estTimeline  bool
)

// estimateCmd projects explicit input without classification
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate capacity and cost from explicit input",
	Long: `Project capacity for a category and audience size, then price it on
every supported provider.

Examples:
  capcost estimate --category saas-b2b --mau 10000
  capcost estimate --category social-network --mau 50000 --features auth,chat --media --realtime
  capcost estimate --category fintech --mau 2000 --timeline --format json`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estCategory, "category", "c", "", "application category (see 'capcost categories')")
	estimateCmd.Flags().Int64VarP(&estMAU, "mau", "m", 0, "target monthly active users")
	estimateCmd.Flags().StringSliceVar(&estFeatures, "features", []string{"auth"}, "comma separated feature ids")
	estimateCmd.Flags().BoolVar(&estMedia, "media", false, "users upload media")
	estimateCmd.Flags().Float64Var(&estMediaSize, "media-size", 0, "average media size in MB (default 2 with --media)")
	estimateCmd.Flags().BoolVar(&estRealtime, "realtime", false, "application keeps realtime connections")
	estimateCmd.Flags().StringVarP(&estRegion, "region", "r", string(benchmarks.RegionBrazil), "primary region (brazil, latam, us, europe, global)")
	estimateCmd.Flags().BoolVar(&estTimeline, "timeline", false, "add month 1, 6 and 12 projections")
	_ = estimateCmd.MarkFlagRequired("category")
	_ = estimateCmd.MarkFlagRequired("mau")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	eng, cleanup, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	category, ok := eng.Catalog().ParseCategory(estCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (see 'capcost categories')", estCategory)
	}

	resp, err := eng.EstimateDirect(ctx, engine.DirectRequest{
		Input: estimate.Input{
			Category:       category,
			TargetMAU:      estMAU,
			Features:       trimAll(estFeatures),
			HasMediaUpload: estMedia,
			AvgMediaSizeMB: estMediaSize,
			HasRealtime:    estRealtime,
			Region:         benchmarks.Region(strings.ToLower(estRegion)),
		},
		Timeline: estTimeline,
	})
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), resp)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}
