package effort

import (
	"fmt"

	"github.com/shopspring/decimal"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateEffortBasedComponentCost prices one component across the
// locations of its resource model.
//
// For each location: hours = allocation/100 x hoursPerDay x effortHours and
// amount = round2(hours x blendRate). The component amount is the sum of the
// already rounded location amounts, so the per-location detail always adds up
// to the reported amount.
//
// Any missing rate, calendar or effort entry fails the whole component with a
// LOOKUP_ERROR; no location is ever priced at a default.
func CalculateEffortBasedComponentCost(
	component types.AssetComponent,
	complexity types.Complexity,
	blendRates BlendRates,
	effortHoursByLocation map[string]float64,
) (types.CostBreakdown, error) {
	totalAmount := decimal.Zero
	totalHours := decimal.Zero
	details := make([]types.EffortBreakdown, 0, len(component.ResourceModel))

	for _, ra := range component.ResourceModel {
		rate, err := blendRates.Rate(ra.Location, complexity)
		if err != nil {
			return types.CostBreakdown{}, err
		}

		hoursPerDay, err := HoursPerDay(ra.Location)
		if err != nil {
			return types.CostBreakdown{}, err
		}

		nominal, ok := effortHoursByLocation[ra.Location]
		if !ok {
			return types.CostBreakdown{}, errors.Newf(errors.TypeLookup,
				"no effort hours defined for component %q at location %q (complexity %s)",
				component.Name, ra.Location, complexity).
				WithContext("component", component.Name).
				WithContext("location", ra.Location)
		}
		effortHours := decimal.NewFromFloat(nominal)

		share := decimal.NewFromFloat(ra.Allocation).Div(hundred)
		locationHours := share.Mul(hoursPerDay).Mul(effortHours)
		amount := Round2(locationHours.Mul(rate))

		totalAmount = totalAmount.Add(amount)
		totalHours = totalHours.Add(locationHours)

		details = append(details, types.EffortBreakdown{
			DeliveryLocation: ra.Location,
			EffortHours:      locationHours,
			EffortAmount:     amount,
			EffortHoursDescription: fmt.Sprintf("%s%% of %sh/day x %s effort hours = %s hours at $%s/h",
				decimal.NewFromFloat(ra.Allocation).String(),
				hoursPerDay.String(),
				effortHours.String(),
				locationHours.StringFixed(2),
				rate.StringFixed(2)),
		})
	}

	return types.CostBreakdown{
		CostComponentName:      component.Name,
		Amount:                 totalAmount,
		Description:            fmt.Sprintf("Effort-based build cost for %s at %s complexity", component.Name, complexity),
		IsError:                false,
		EffortHours:            &totalHours,
		EffortHoursDescription: fmt.Sprintf("%s hours across %d location(s)", totalHours.StringFixed(2), len(details)),
		EffortBreakdown:        details,
	}, nil
}
