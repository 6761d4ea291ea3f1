// Package cmd provides the CLI commands for asset-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asset-cost/assets"
	"asset-cost/core/calculator"
	"asset-cost/internal/config"
	"asset-cost/internal/logging"
)

// Version is the CLI version
const Version = "1.0.0"

var (
	cfgFile string
	verbose bool

	cfg = config.Default()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "asset-cost",
	Short: "Estimate build and run costs of deployable assets",
	Long: `asset-cost estimates the one-time build cost and the recurring run cost
of an asset instance from its components, delivery locations and
asset-specific parameters.

Examples:
  asset-cost estimate request.json
  cat request.json | asset-cost estimate --format json -
  asset-cost ratecard show ignition`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./asset-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(ratecardCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	path := cfgFile
	if path == "" {
		path = "asset-cost.json"
	}
	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := loaded.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newRegistry builds the calculator registry with the configured overrides
func newRegistry() (*calculator.Registry, error) {
	return assets.NewRegistry(cfg.RateCards)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "asset-cost version %s\n", Version)
	},
}

// assetsCmd lists the registered asset types
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List supported asset types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}
		for _, name := range registry.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
