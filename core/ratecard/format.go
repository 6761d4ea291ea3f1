package ratecard

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"asset-cost/core/types"
)

// FormatHCL renders the card in the format LoadFile reads.
// Output is deterministic: locations, components and fees are sorted and
// complexities follow their natural order.
func (c *RateCard) FormatHCL() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("asset", cty.StringVal(c.Asset))

	for _, location := range sortedKeys(c.BlendRates) {
		body.AppendNewline()
		block := body.AppendNewBlock("blend_rate", []string{location})
		setComplexities(block.Body(), c.BlendRates[location])
	}

	for _, component := range sortedKeys(c.Effort) {
		byLocation := make(map[string]map[types.Complexity]float64)
		for complexity, row := range c.Effort[component] {
			for location, hours := range row {
				if byLocation[location] == nil {
					byLocation[location] = make(map[types.Complexity]float64)
				}
				byLocation[location][complexity] = hours
			}
		}
		for _, location := range sortedKeys(byLocation) {
			body.AppendNewline()
			block := body.AppendNewBlock("effort", []string{component, location})
			setComplexities(block.Body(), byLocation[location])
		}
	}

	if len(c.OperationsHours) > 0 {
		body.AppendNewline()
		block := body.AppendNewBlock("operations_hours", nil)
		setComplexities(block.Body(), c.OperationsHours)
	}

	if len(c.Fees) > 0 {
		body.AppendNewline()
		fees := body.AppendNewBlock("fees", nil).Body()
		for _, name := range sortedKeys(c.Fees) {
			fees.SetAttributeValue(name, cty.NumberFloatVal(c.Fees[name]))
		}
	}

	return f.Bytes()
}

func setComplexities(body *hclwrite.Body, values map[types.Complexity]float64) {
	for _, complexity := range types.Complexities {
		if v, ok := values[complexity]; ok {
			body.SetAttributeValue(string(complexity), cty.NumberFloatVal(v))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
