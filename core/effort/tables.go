package effort

import (
	"sort"

	"github.com/shopspring/decimal"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

// BlendRates is the hourly rate by location and complexity
type BlendRates map[string]map[types.Complexity]float64

// Rate returns the blend rate for a location at a complexity
func (r BlendRates) Rate(location string, complexity types.Complexity) (decimal.Decimal, error) {
	rate, ok := r[location][complexity]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "no blend rate defined for location %q at complexity %s", location, complexity).
			WithContext("location", location).
			WithContext("complexity", string(complexity))
	}
	return decimal.NewFromFloat(rate), nil
}

// Locations returns the locations with at least one rate, sorted
func (r BlendRates) Locations() []string {
	locations := make([]string, 0, len(r))
	for location := range r {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}

// Clone returns a deep copy
func (r BlendRates) Clone() BlendRates {
	out := make(BlendRates, len(r))
	for location, byComplexity := range r {
		inner := make(map[types.Complexity]float64, len(byComplexity))
		for c, v := range byComplexity {
			inner[c] = v
		}
		out[location] = inner
	}
	return out
}

// Table holds nominal effort hours by component, complexity and location.
// Values are not yet adjusted for allocation or working calendar.
type Table map[string]map[types.Complexity]map[string]float64

// HoursByLocation returns the effort row of a component at a complexity
func (t Table) HoursByLocation(component string, complexity types.Complexity) (map[string]float64, error) {
	byComplexity, ok := t[component]
	if !ok {
		return nil, errors.Newf(errors.TypeLookup, "no effort hours defined for component %q", component).
			WithContext("component", component)
	}
	row, ok := byComplexity[complexity]
	if !ok {
		return nil, errors.Newf(errors.TypeLookup, "no effort hours defined for component %q at complexity %s", component, complexity).
			WithContext("component", component).
			WithContext("complexity", string(complexity))
	}
	return row, nil
}

// Components returns the component names in the table, sorted
func (t Table) Components() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for component, byComplexity := range t {
		inner := make(map[types.Complexity]map[string]float64, len(byComplexity))
		for c, row := range byComplexity {
			r := make(map[string]float64, len(row))
			for location, hours := range row {
				r[location] = hours
			}
			inner[c] = r
		}
		out[component] = inner
	}
	return out
}
