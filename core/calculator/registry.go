package calculator

import (
	"context"
	"sort"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

// Registry maps asset names to calculators.
// It is fully populated by NewRegistry and never changes afterwards, so it
// is safe for concurrent use without locking.
type Registry struct {
	calculators map[string]Calculator
	names       []string
}

// NewRegistry creates a registry holding calcs.
// Fails fast on an empty or duplicated asset name.
func NewRegistry(calcs ...Calculator) (*Registry, error) {
	r := &Registry{
		calculators: make(map[string]Calculator, len(calcs)),
		names:       make([]string, 0, len(calcs)),
	}

	for _, calc := range calcs {
		if calc == nil {
			return nil, errors.New(errors.TypeConfig, "cannot register a nil calculator")
		}
		name := calc.AssetName()
		if name == "" {
			return nil, errors.New(errors.TypeConfig, "calculator has an empty asset name")
		}
		if _, exists := r.calculators[name]; exists {
			return nil, errors.Newf(errors.TypeConfig, "calculator already registered: %s", name)
		}
		r.calculators[name] = calc
		r.names = append(r.names, name)
	}

	sort.Strings(r.names)
	return r, nil
}

// Get returns the calculator of an asset
func (r *Registry) Get(assetName string) (Calculator, bool) {
	calc, ok := r.calculators[assetName]
	return calc, ok
}

// Names returns every registered asset name, sorted
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered calculators
func (r *Registry) Len() int {
	return len(r.calculators)
}

// Calculate dispatches req to the calculator of req.AssetName
func (r *Registry) Calculate(ctx context.Context, req *types.AssetCostRequest) (*types.AssetCostResponse, error) {
	if req == nil {
		return nil, errors.Validation("request is required")
	}
	calc, ok := r.Get(req.AssetName)
	if !ok {
		return nil, errors.NotFound("asset", req.AssetName).WithContext("available", r.Names())
	}
	return CalculateCosts(ctx, calc, req)
}
