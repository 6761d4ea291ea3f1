package ratecard

import (
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "asset", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "blend_rate", LabelNames: []string{"location"}},
		{Type: "effort", LabelNames: []string{"component", "location"}},
		{Type: "operations_hours"},
		{Type: "fees"},
	},
}

// LoadFile reads a rate card override from an HCL file.
// The returned card only holds the values present in the file; apply it to a
// full card with Merge.
func LoadFile(path string) (*RateCard, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read rate card file", err).WithContext("file", path)
	}
	return Parse(src, path)
}

// Parse decodes rate card HCL source. filename is only used in messages.
func Parse(src []byte, filename string) (*RateCard, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid rate card syntax", diagError(diags)).WithContext("file", filename)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid rate card structure", diagError(diags)).WithContext("file", filename)
	}

	card := &RateCard{
		BlendRates:      make(map[string]map[types.Complexity]float64),
		Effort:          make(map[string]map[types.Complexity]map[string]float64),
		OperationsHours: make(map[types.Complexity]float64),
		Fees:            make(map[string]float64),
	}

	asset, err := stringAttr(content.Attributes["asset"])
	if err != nil {
		return nil, parseErr(filename, err)
	}
	card.Asset = asset

	for _, block := range content.Blocks {
		switch block.Type {
		case "blend_rate":
			rates, err := complexityValues(block.Body)
			if err != nil {
				return nil, parseErr(filename, err)
			}
			location := block.Labels[0]
			if card.BlendRates[location] == nil {
				card.BlendRates[location] = make(map[types.Complexity]float64)
			}
			for c, v := range rates {
				card.BlendRates[location][c] = v
			}

		case "effort":
			hours, err := complexityValues(block.Body)
			if err != nil {
				return nil, parseErr(filename, err)
			}
			component, location := block.Labels[0], block.Labels[1]
			if card.Effort[component] == nil {
				card.Effort[component] = make(map[types.Complexity]map[string]float64)
			}
			for c, v := range hours {
				if card.Effort[component][c] == nil {
					card.Effort[component][c] = make(map[string]float64)
				}
				card.Effort[component][c][location] = v
			}

		case "operations_hours":
			hours, err := complexityValues(block.Body)
			if err != nil {
				return nil, parseErr(filename, err)
			}
			for c, v := range hours {
				card.OperationsHours[c] = v
			}

		case "fees":
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, parseErr(filename, diagError(diags))
			}
			for _, attr := range sortedAttributes(attrs) {
				v, err := numberAttr(attr)
				if err != nil {
					return nil, parseErr(filename, err)
				}
				card.Fees[attr.Name] = v
			}
		}
	}

	return card, nil
}

// complexityValues decodes a block whose attributes are complexity names
func complexityValues(body hcl.Body) (map[types.Complexity]float64, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	out := make(map[types.Complexity]float64, len(attrs))
	for _, attr := range sortedAttributes(attrs) {
		c, err := types.ParseComplexity(attr.Name)
		if err != nil {
			return nil, errors.Newf(errors.TypeParsing, "%s: %v", posOf(attr.NameRange), err)
		}
		v, err := numberAttr(attr)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}

// sortedAttributes orders attributes by source position so the first
// problem in the file is the one reported.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	list := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Range.Start.Byte < list[j].Range.Start.Byte
	})
	return list
}

func parseErr(filename string, err error) error {
	if errors.IsType(err, errors.TypeParsing) {
		return err
	}
	return errors.Parsing("invalid rate card", err).WithContext("file", filename)
}
