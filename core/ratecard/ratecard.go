// Package ratecard holds the static pricing data of one asset type: blend
// rates, effort hours, operations hours and named flat fees.
// A card is built once and never mutated while calculations read it.
package ratecard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"asset-cost/core/effort"
	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

// RateCard is the complete pricing data of an asset type
type RateCard struct {
	// Asset is the asset name this card prices
	Asset string

	// BlendRates is the hourly rate by location and complexity
	BlendRates effort.BlendRates

	// Effort is the nominal effort by component, complexity and location
	Effort effort.Table

	// OperationsHours is the monthly operations effort by complexity
	OperationsHours map[types.Complexity]float64

	// Fees are named flat amounts (setup fees, subscriptions, per-GB prices)
	Fees map[string]float64
}

// Fee returns a named fee. A missing fee is a lookup error.
func (c *RateCard) Fee(name string) (decimal.Decimal, error) {
	v, ok := c.Fees[name]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "rate card %q has no fee %q", c.Asset, name).
			WithContext("fee", name)
	}
	return decimal.NewFromFloat(v), nil
}

// Operations returns the monthly operations hours at a complexity
func (c *RateCard) Operations(complexity types.Complexity) (decimal.Decimal, error) {
	v, ok := c.OperationsHours[complexity]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "rate card %q has no operations hours at complexity %s", c.Asset, complexity)
	}
	return decimal.NewFromFloat(v), nil
}

// Clone returns a deep copy
func (c *RateCard) Clone() *RateCard {
	out := &RateCard{
		Asset:           c.Asset,
		BlendRates:      c.BlendRates.Clone(),
		Effort:          c.Effort.Clone(),
		OperationsHours: make(map[types.Complexity]float64, len(c.OperationsHours)),
		Fees:            make(map[string]float64, len(c.Fees)),
	}
	for k, v := range c.OperationsHours {
		out.OperationsHours[k] = v
	}
	for k, v := range c.Fees {
		out.Fees[k] = v
	}
	return out
}

// Merge returns a copy of c with every value present in override applied.
// Entries absent from override keep their value from c.
func (c *RateCard) Merge(override *RateCard) (*RateCard, error) {
	if override == nil {
		return c.Clone(), nil
	}
	if override.Asset != "" && override.Asset != c.Asset {
		return nil, errors.Newf(errors.TypeConfig, "rate card for %q cannot override %q", override.Asset, c.Asset)
	}

	out := c.Clone()
	for location, byComplexity := range override.BlendRates {
		if out.BlendRates[location] == nil {
			out.BlendRates[location] = make(map[types.Complexity]float64)
		}
		for complexity, rate := range byComplexity {
			out.BlendRates[location][complexity] = rate
		}
	}
	for component, byComplexity := range override.Effort {
		if out.Effort[component] == nil {
			out.Effort[component] = make(map[types.Complexity]map[string]float64)
		}
		for complexity, row := range byComplexity {
			if out.Effort[component][complexity] == nil {
				out.Effort[component][complexity] = make(map[string]float64)
			}
			for location, hours := range row {
				out.Effort[component][complexity][location] = hours
			}
		}
	}
	for complexity, hours := range override.OperationsHours {
		out.OperationsHours[complexity] = hours
	}
	for name, fee := range override.Fees {
		out.Fees[name] = fee
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks that every value is usable
func (c *RateCard) Validate() error {
	if c.Asset == "" {
		return errors.New(errors.TypeConfig, "rate card has no asset name")
	}

	var problems []string
	for location, byComplexity := range c.BlendRates {
		for complexity, rate := range byComplexity {
			if !complexity.Valid() {
				problems = append(problems, fmt.Sprintf("blend rate %s: unknown complexity %q", location, complexity))
			}
			if rate < 0 {
				problems = append(problems, fmt.Sprintf("blend rate %s/%s is negative", location, complexity))
			}
		}
	}
	for component, byComplexity := range c.Effort {
		for complexity, row := range byComplexity {
			if !complexity.Valid() {
				problems = append(problems, fmt.Sprintf("effort %s: unknown complexity %q", component, complexity))
			}
			for location, hours := range row {
				if hours < 0 {
					problems = append(problems, fmt.Sprintf("effort %s/%s/%s is negative", component, complexity, location))
				}
			}
		}
	}
	for complexity, hours := range c.OperationsHours {
		if !complexity.Valid() {
			problems = append(problems, fmt.Sprintf("operations hours: unknown complexity %q", complexity))
		}
		if hours < 0 {
			problems = append(problems, fmt.Sprintf("operations hours at %s are negative", complexity))
		}
	}
	for name, fee := range c.Fees {
		if fee < 0 {
			problems = append(problems, fmt.Sprintf("fee %s is negative", name))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.Newf(errors.TypeConfig, "invalid rate card %q: %s", c.Asset, strings.Join(problems, "; "))
	}
	return nil
}
