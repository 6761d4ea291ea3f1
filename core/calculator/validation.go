package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"asset-cost/core/types"
)

// allocationTolerance is how far an allocation sum may drift from 100
var allocationTolerance = decimal.RequireFromString("0.01")

var fullAllocation = decimal.NewFromInt(100)

// ValidateComponents checks that components are well formed and returns
// every problem found. An empty result means the components are valid.
func ValidateComponents(components []types.AssetComponent) []string {
	if len(components) == 0 {
		return []string{"no components specified"}
	}

	var problems []string

	seen := make(map[string]int, len(components))
	var duplicates []string
	for _, c := range components {
		seen[c.Name]++
		if seen[c.Name] == 2 && c.Name != "" {
			duplicates = append(duplicates, c.Name)
		}
	}
	if len(duplicates) > 0 {
		problems = append(problems, "duplicate component names: "+strings.Join(duplicates, ", "))
	}

	for i, c := range components {
		if c.Name == "" {
			problems = append(problems, fmt.Sprintf("component at index %d has an empty name", i))
		}
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if len(c.ResourceModel) == 0 {
			problems = append(problems, fmt.Sprintf("component %q has an empty resource model", label))
			continue
		}

		sum := decimal.Zero
		for _, ra := range c.ResourceModel {
			if ra.Location == "" {
				problems = append(problems, fmt.Sprintf("component %q has a resource allocation with an empty location", label))
			}
			if ra.Allocation < 0 || ra.Allocation > 100 {
				problems = append(problems, fmt.Sprintf("component %q allocation for %q must be between 0 and 100, got %g", label, ra.Location, ra.Allocation))
			}
			sum = sum.Add(decimal.NewFromFloat(ra.Allocation))
		}

		if sum.Sub(fullAllocation).Abs().GreaterThan(allocationTolerance) {
			problems = append(problems, fmt.Sprintf("component %q resource allocations sum to %s, expected 100", label, sum.String()))
		}
	}

	return problems
}
