// Package cmd - rate card commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"asset-cost/assets"
	"asset-cost/core/ratecard"
)

var overrideFile string

// ratecardCmd groups rate card inspection commands
var ratecardCmd = &cobra.Command{
	Use:   "ratecard",
	Short: "Inspect and validate rate cards",
	Long: `Rate cards hold the blend rates, effort hours, operations hours and fees
an asset calculator prices with. Overrides are HCL files listed under
"rate_cards" in the config file.`,
}

var ratecardValidateCmd = &cobra.Command{
	Use:   "validate <file.hcl>",
	Short: "Validate a rate card override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := ratecard.LoadFile(args[0])
		if err != nil {
			return err
		}
		// The override must also apply cleanly to the built-in card
		if _, err := assets.RateCard(override.Asset, args[0]); err != nil {
			return err
		}

		effortRows := 0
		for _, byComplexity := range override.Effort {
			effortRows += len(byComplexity)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s rate card (%d blend rate location(s), %d effort row(s), %d operations value(s), %d fee(s))\n",
			args[0], override.Asset, len(override.BlendRates), effortRows, len(override.OperationsHours), len(override.Fees))
		return nil
	},
}

var ratecardShowCmd = &cobra.Command{
	Use:   "show <asset>",
	Short: "Print the effective rate card of an asset as HCL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := overrideFile
		if path == "" {
			path = cfg.RateCards[args[0]]
		}
		card, err := assets.RateCard(args[0], path)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(card.FormatHCL())
		return err
	},
}

func init() {
	ratecardShowCmd.Flags().StringVar(&overrideFile, "override", "", "HCL override file to apply (default from config)")

	ratecardCmd.AddCommand(ratecardValidateCmd)
	ratecardCmd.AddCommand(ratecardShowCmd)
}
