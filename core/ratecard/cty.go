package ratecard

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// attrValue evaluates an attribute without variables or functions.
// Rate card files are plain data; any reference is a parse failure.
func attrValue(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagError(diags)
	}
	// Unknown values cannot occur without an eval context, but never pass
	// one through as a number.
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("%s: %s is not a known value", posOf(attr.Range), attr.Name)
	}
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("%s: %s is null", posOf(attr.Range), attr.Name)
	}
	return val, nil
}

// numberAttr returns a non-negative number attribute as float64
func numberAttr(attr *hcl.Attribute) (float64, error) {
	val, err := attrValue(attr)
	if err != nil {
		return 0, err
	}
	if val.Type() != cty.Number {
		return 0, fmt.Errorf("%s: %s must be a number, got %s", posOf(attr.Range), attr.Name, val.Type().FriendlyName())
	}
	f, _ := val.AsBigFloat().Float64()
	if f < 0 {
		return 0, fmt.Errorf("%s: %s must not be negative", posOf(attr.Range), attr.Name)
	}
	return f, nil
}

// stringAttr returns a string attribute
func stringAttr(attr *hcl.Attribute) (string, error) {
	val, err := attrValue(attr)
	if err != nil {
		return "", err
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("%s: %s must be a string, got %s", posOf(attr.Range), attr.Name, val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func posOf(r hcl.Range) string {
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}

// diagError reports the first error diagnostic as file:line: summary: detail
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		if diag.Subject != nil {
			return fmt.Errorf("%s: %s", posOf(*diag.Subject), msg)
		}
		return fmt.Errorf("%s", msg)
	}
	return diags
}
