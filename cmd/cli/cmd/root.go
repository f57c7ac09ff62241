// Package cmd provides the CLI commands for capcost.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"capcost/core/classifier"
	"capcost/core/engine"
	"capcost/core/output"
	"capcost/internal/app"
	"capcost/internal/config"
	"capcost/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	noColor      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "capcost",
	Short: "Estimate app capacity and monthly cloud cost",
	Long: `capcost projects the traffic, storage and bandwidth of an application
from category benchmarks and prices it on several cloud providers.

Examples:
  capcost estimate --category saas-b2b --mau 10000 --features auth,search
  capcost describe "A marketplace for boat rentals with chat" --month6 5000
  capcost benchmark fintech`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.capcost/config.hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// The CLI logs quietly unless asked
	cfg.Logging.Level = "warn"
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEngine wires an engine from the loaded config. The CLI caches
// classifications in memory unless Redis is configured.
func newEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cfg := config.Get()
	opts := app.Options{}
	if cfg.Cache.RedisAddr == "" {
		opts.Cache = classifier.NewMemoryCache()
	}
	return app.NewEngine(ctx, cfg, opts)
}

// render writes v in the selected output format
func render(w io.Writer, v interface{}) error {
	f, err := output.New(outputFormat, noColor)
	if err != nil {
		return err
	}
	return f.Render(w, v)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "capcost version %s\n", Version)
	},
}
