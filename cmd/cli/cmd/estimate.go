// Package cmd - estimate command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

var outputFormat string

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <request.json|->",
	Short: "Estimate the build and run cost of an asset instance",
	Long: `Read an asset cost request as JSON and print its build and run costs.

Use "-" to read the request from standard input.

Examples:
  asset-cost estimate request.json
  asset-cost estimate --format json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if outputFormat != "table" && outputFormat != "json" {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	req, err := readRequest(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}

	logging.Debug("estimating", zap.String("asset", req.AssetName))
	resp, err := registry.Calculate(context.Background(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResults(out, resp)
	return nil
}

func readRequest(stdin io.Reader, path string) (*types.AssetCostRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req types.AssetCostRequest
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Parsing("invalid request JSON", err)
	}
	return &req, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	errorStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

func printResults(out io.Writer, resp *types.AssetCostResponse) {
	fmt.Fprintf(out, "Asset: %s (estimated %s)\n\n", resp.AssetName, resp.EstimationDate.Format("2006-01-02 15:04 MST"))

	fmt.Fprintln(out, "BUILD COST")
	fmt.Fprintln(out, breakdownTable(resp.BuildCost.Breakdown, "TOTAL BUILD", resp.BuildCost.Total.StringFixed(2)).Render())

	fmt.Fprintf(out, "\nRUN COST (%s)\n", resp.RunCost.Period)
	fmt.Fprintln(out, breakdownTable(resp.RunCost.Breakdown, "TOTAL RUN", resp.RunCost.Total.StringFixed(2)).Render())

	if n := types.ErrorCount(resp.BuildCost.Breakdown) + types.ErrorCount(resp.RunCost.Breakdown); n > 0 {
		fmt.Fprintf(out, "\nWarning: %d line item(s) could not be calculated\n", n)
	}
}

func breakdownTable(items []types.CostBreakdown, totalLabel, total string) *table.Table {
	rows := make([][]string, 0, len(items)+1)
	errorRows := make(map[int]bool)
	for i, item := range items {
		if item.IsError {
			errorRows[i] = true
			rows = append(rows, []string{item.CostComponentName, "ERROR", item.ErrorMessage})
			continue
		}
		rows = append(rows, []string{item.CostComponentName, "$" + item.Amount.StringFixed(2), truncate(item.Description, 70)})
	}
	rows = append(rows, []string{totalLabel, "$" + total, types.CurrencyUSD.String()})

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LINE ITEM", "AMOUNT", "DETAIL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case errorRows[row]:
				return errorStyle
			case col == 1:
				return amountStyle
			default:
				return cellStyle
			}
		})
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
