// Package effort implements the effort-based cost formula shared by every
// asset calculator: allocation x working hours x effort x blend rate, rounded
// per delivery location and summed.
package effort

import (
	"sort"

	"github.com/shopspring/decimal"

	"asset-cost/internal/errors"
)

// workingHoursPerDay is the nominal working day length of each delivery
// location. It normalizes effort tables across calendars and is shared by
// all asset types.
var workingHoursPerDay = map[string]float64{
	"USA":         8,
	"Canada":      8,
	"Poland":      8,
	"Mexico":      9,
	"India":       9,
	"Philippines": 9,
}

// HoursPerDay returns the working hours per day of a location.
// Unknown locations are a lookup error; there is no default day length.
func HoursPerDay(location string) (decimal.Decimal, error) {
	hours, ok := workingHoursPerDay[location]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "no working calendar defined for location %q", location).
			WithContext("location", location)
	}
	return decimal.NewFromFloat(hours), nil
}

// Locations returns every location with a working calendar, sorted
func Locations() []string {
	locations := make([]string, 0, len(workingHoursPerDay))
	for location := range workingHoursPerDay {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}
