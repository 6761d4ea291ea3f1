// Package types - Cost breakdown types
package types

import (
	stderrors "errors"
	"time"

	"github.com/shopspring/decimal"

	"asset-cost/internal/errors"
)

func init() {
	// Amounts are emitted as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency represents a currency code
type Currency string

// CurrencyUSD is the only currency estimates are produced in
const CurrencyUSD Currency = "USD"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Period is the billing period of a run cost
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// EffortBreakdown is the per-location detail of an effort-based line item
type EffortBreakdown struct {
	DeliveryLocation       string          `json:"deliveryLocation"`
	EffortHours            decimal.Decimal `json:"effortHours"`
	EffortAmount           decimal.Decimal `json:"effortAmount"`
	EffortHoursDescription string          `json:"effortHoursDescription"`
}

// CostBreakdown is one line item of a build or run cost
type CostBreakdown struct {
	// CostComponentName names the line item
	CostComponentName string `json:"costComponentName"`

	// Amount is the line item cost; zero for error entries
	Amount decimal.Decimal `json:"amount"`

	// Description explains how the amount was derived
	Description string `json:"description"`

	// IsError marks an entry whose calculation failed
	IsError bool `json:"isError"`

	// ErrorMessage is set on error entries
	ErrorMessage string `json:"errorMessage,omitempty"`

	// Effort detail, set on effort-based entries only
	EffortHours            *decimal.Decimal  `json:"effortHours,omitempty"`
	EffortHoursDescription string            `json:"effortHoursDescription,omitempty"`
	EffortBreakdown        []EffortBreakdown `json:"effortBreakdown,omitempty"`
}

// LineItem creates a plain, non-effort line item
func LineItem(name string, amount decimal.Decimal, description string) CostBreakdown {
	return CostBreakdown{
		CostComponentName: name,
		Amount:            amount,
		Description:       description,
	}
}

// ErrorEntry creates a zero-amount line item recording a failed calculation
func ErrorEntry(name, description string, err error) CostBreakdown {
	message := err.Error()
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause == nil {
		message = e.Message
	}
	return CostBreakdown{
		CostComponentName: name,
		Amount:            decimal.Zero,
		Description:       description,
		IsError:           true,
		ErrorMessage:      message,
	}
}

// SumBreakdown adds up every amount, error entries included
func SumBreakdown(items []CostBreakdown) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// ErrorCount returns the number of error entries
func ErrorCount(items []CostBreakdown) int {
	n := 0
	for _, item := range items {
		if item.IsError {
			n++
		}
	}
	return n
}

// BuildCost is the one-time cost to construct an asset instance
type BuildCost struct {
	Total     decimal.Decimal `json:"total"`
	Currency  Currency        `json:"currency"`
	Breakdown []CostBreakdown `json:"breakdown"`
}

// NewBuildCost derives the total from the breakdown
func NewBuildCost(breakdown []CostBreakdown) *BuildCost {
	if breakdown == nil {
		breakdown = []CostBreakdown{}
	}
	return &BuildCost{
		Total:     SumBreakdown(breakdown),
		Currency:  CurrencyUSD,
		Breakdown: breakdown,
	}
}

// RunCost is the recurring cost of operating an asset instance
type RunCost struct {
	Total     decimal.Decimal `json:"total"`
	Currency  Currency        `json:"currency"`
	Period    Period          `json:"period"`
	Breakdown []CostBreakdown `json:"breakdown"`
}

// NewRunCost derives the total from the breakdown
func NewRunCost(period Period, breakdown []CostBreakdown) *RunCost {
	if breakdown == nil {
		breakdown = []CostBreakdown{}
	}
	return &RunCost{
		Total:     SumBreakdown(breakdown),
		Currency:  CurrencyUSD,
		Period:    period,
		Breakdown: breakdown,
	}
}

// AssetCostResponse is the complete result of a cost calculation
type AssetCostResponse struct {
	AssetName      string    `json:"assetName"`
	BuildCost      BuildCost `json:"buildCost"`
	RunCost        RunCost   `json:"runCost"`
	EstimationDate time.Time `json:"estimationDate"`
}
