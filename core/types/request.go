// Package types - Cost request types
package types

import (
	"encoding/json"
	"math"

	"asset-cost/internal/errors"
)

// DeploymentType is how the asset instance is hosted
type DeploymentType string

const (
	DeploymentOnPremise DeploymentType = "onPremise"
	DeploymentCloud     DeploymentType = "cloud"
	DeploymentHybrid    DeploymentType = "hybrid"
	DeploymentManaged   DeploymentType = "managed"
)

// DeploymentTypes lists the accepted deployment types
var DeploymentTypes = []DeploymentType{
	DeploymentOnPremise,
	DeploymentCloud,
	DeploymentHybrid,
	DeploymentManaged,
}

// Valid reports whether d is a known deployment type
func (d DeploymentType) Valid() bool {
	for _, known := range DeploymentTypes {
		if d == known {
			return true
		}
	}
	return false
}

// SupportLevel is the contracted support tier
type SupportLevel string

const (
	SupportBasic    SupportLevel = "basic"
	SupportStandard SupportLevel = "standard"
	SupportPremium  SupportLevel = "premium"
)

// SupportLevels lists the accepted support levels
var SupportLevels = []SupportLevel{
	SupportBasic,
	SupportStandard,
	SupportPremium,
}

// Valid reports whether s is a known support level
func (s SupportLevel) Valid() bool {
	for _, known := range SupportLevels {
		if s == known {
			return true
		}
	}
	return false
}

// ResourceAllocation assigns a percentage of a component's work to a location
type ResourceAllocation struct {
	// Location is the delivery location (e.g., "USA", "India")
	Location string `json:"location"`

	// Allocation is a percentage in [0,100]
	Allocation float64 `json:"allocation"`
}

// AssetComponent is one named deliverable piece of an asset
type AssetComponent struct {
	// Name is unique within a request
	Name string `json:"name"`

	// ResourceModel splits the component's work across locations
	ResourceModel []ResourceAllocation `json:"resourceModel"`
}

// CommonFields are the fields every asset type accepts
type CommonFields struct {
	DeploymentType DeploymentType `json:"deploymentType"`
	Region         string         `json:"region,omitempty"`
	SupportLevel   SupportLevel   `json:"supportLevel,omitempty"`
}

// AssetCostRequest is the input to a cost calculation
type AssetCostRequest struct {
	// AssetName selects the calculator
	AssetName string `json:"assetName"`

	// Complexity is optional; how an empty value is treated is calculator policy
	Complexity string `json:"complexity,omitempty"`

	CommonFields    CommonFields     `json:"commonFields"`
	AssetComponents []AssetComponent `json:"assetComponents"`

	// SpecificFields carries calculator-defined parameters
	SpecificFields SpecificFields `json:"specificFields,omitempty"`
}

// SpecificFields is the loosely typed bag of asset-specific parameters.
// Each calculator reads its own keys through the typed accessors below,
// which never coerce: a value of the wrong kind is a precondition error.
type SpecificFields map[string]interface{}

// Number returns a numeric field. present is false when the key is absent or null.
func (f SpecificFields) Number(key string) (value float64, present bool, err error) {
	raw, ok := f[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case json.Number:
		value, err = v.Float64()
		if err != nil {
			return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s must be a number, got %q", key, v.String())
		}
	default:
		return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s must be a number, got %T", key, raw)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s must be a finite number", key)
	}
	return value, true, nil
}

// Int returns an integral field. Fractional numbers are rejected.
func (f SpecificFields) Int(key string) (value int, present bool, err error) {
	n, present, err := f.Number(key)
	if err != nil || !present {
		return 0, present, err
	}
	if n != math.Trunc(n) {
		return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s must be an integer, got %v", key, n)
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s is out of range: %v", key, n)
	}
	return int(n), true, nil
}

// RequirePositiveInt returns a mandatory integer field that must be > 0
func (f SpecificFields) RequirePositiveInt(key string) (int, error) {
	n, present, err := f.Int(key)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, errors.Newf(errors.TypePrecondition, "specificFields.%s is required", key)
	}
	if n <= 0 {
		return 0, errors.Newf(errors.TypePrecondition, "specificFields.%s must be a positive integer, got %d", key, n)
	}
	return n, nil
}

// OptionalPositiveInt returns an integer field that must be > 0 when present
func (f SpecificFields) OptionalPositiveInt(key string) (int, bool, error) {
	n, present, err := f.Int(key)
	if err != nil || !present {
		return 0, present, err
	}
	if n <= 0 {
		return 0, true, errors.Newf(errors.TypePrecondition, "specificFields.%s must be a positive integer, got %d", key, n)
	}
	return n, true, nil
}

// IntOrDefault returns an optional integer field that must be >= minimum
func (f SpecificFields) IntOrDefault(key string, def, minimum int) (int, error) {
	n, present, err := f.Int(key)
	if err != nil {
		return 0, err
	}
	if !present {
		return def, nil
	}
	if n < minimum {
		return 0, errors.Newf(errors.TypePrecondition, "specificFields.%s must be at least %d, got %d", key, minimum, n)
	}
	return n, nil
}

// NonNegativeOrDefault returns an optional numeric field that must be >= 0
func (f SpecificFields) NonNegativeOrDefault(key string, def float64) (float64, error) {
	n, present, err := f.Number(key)
	if err != nil {
		return 0, err
	}
	if !present {
		return def, nil
	}
	if n < 0 {
		return 0, errors.Newf(errors.TypePrecondition, "specificFields.%s must not be negative, got %g", key, n)
	}
	return n, nil
}
