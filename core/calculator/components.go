package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"asset-cost/core/effort"
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

// ComplexityPolicy decides how a calculator treats the request complexity
type ComplexityPolicy struct {
	// Required rejects an absent or invalid complexity
	Required bool

	// Default replaces an absent or invalid complexity when not Required
	Default types.Complexity
}

// Resolve applies the policy to the raw request value
func (p ComplexityPolicy) Resolve(asset, raw string) (types.Complexity, error) {
	if raw == "" {
		if p.Required {
			return "", errors.Newf(errors.TypePrecondition, "complexity is required for asset %q", asset)
		}
		logging.Logger.Warn("complexity not provided, using default",
			zap.String("asset", asset),
			zap.String("default", string(p.Default)))
		return p.Default, nil
	}

	c, err := types.ParseComplexity(raw)
	if err != nil {
		if p.Required {
			return "", errors.Wrapf(errors.TypePrecondition, err, "invalid complexity for asset %q", asset)
		}
		logging.Logger.Warn("invalid complexity, using default",
			zap.String("asset", asset),
			zap.String("complexity", raw),
			zap.String("default", string(p.Default)))
		return p.Default, nil
	}
	return c, nil
}

// ComponentCosts prices every component with the effort formula.
// A lookup failure on one component becomes an error entry with a zero
// amount and the remaining components are still priced. Any other failure
// aborts the calculation.
func ComponentCosts(components []types.AssetComponent, complexity types.Complexity, card *ratecard.RateCard) ([]types.CostBreakdown, error) {
	items := make([]types.CostBreakdown, 0, len(components))

	for _, component := range components {
		item, err := componentCost(component, complexity, card)
		if err != nil {
			if !errors.IsType(err, errors.TypeLookup) {
				return nil, err
			}
			logging.Logger.Warn("component cost lookup failed",
				zap.String("asset", card.Asset),
				zap.String("component", component.Name),
				zap.Error(err))
			items = append(items, types.ErrorEntry(component.Name,
				fmt.Sprintf("Effort-based build cost for %s could not be calculated", component.Name), err))
			continue
		}

		logging.Logger.Debug("component priced",
			zap.String("asset", card.Asset),
			zap.String("component", component.Name),
			zap.String("amount", item.Amount.StringFixed(2)))
		items = append(items, item)
	}

	return items, nil
}

func componentCost(component types.AssetComponent, complexity types.Complexity, card *ratecard.RateCard) (types.CostBreakdown, error) {
	row, err := card.Effort.HoursByLocation(component.Name, complexity)
	if err != nil {
		return types.CostBreakdown{}, err
	}
	return effort.CalculateEffortBasedComponentCost(component, complexity, card.BlendRates, row)
}

// locationShare is one delivery location's share of the combined work
type locationShare struct {
	location string
	share    decimal.Decimal
}

// locationShares averages allocations across components, keeping locations
// in order of first appearance.
func locationShares(components []types.AssetComponent) []locationShare {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, c := range components {
		for _, ra := range c.ResourceModel {
			if _, ok := sums[ra.Location]; !ok {
				order = append(order, ra.Location)
				sums[ra.Location] = decimal.Zero
			}
			sums[ra.Location] = sums[ra.Location].Add(decimal.NewFromFloat(ra.Allocation))
		}
	}

	denominator := decimal.NewFromInt(int64(100 * len(components)))
	shares := make([]locationShare, 0, len(order))
	for _, location := range order {
		shares = append(shares, locationShare{
			location: location,
			share:    sums[location].Div(denominator),
		})
	}
	return shares
}

// OperationsCosts prices the monthly operations effort of an asset instance
// per delivery location. Each location carries its average allocation across
// all components of the monthly operations hours, priced at the location's
// blend rate and scaled by the support multiplier. A location without a blend
// rate becomes an error entry.
func OperationsCosts(components []types.AssetComponent, complexity types.Complexity, card *ratecard.RateCard, support types.SupportLevel) ([]types.CostBreakdown, error) {
	opsHours, err := card.Operations(complexity)
	if err != nil {
		return nil, err
	}
	multiplier := SupportMultiplier(support)

	shares := locationShares(components)
	items := make([]types.CostBreakdown, 0, len(shares))
	for _, ls := range shares {
		name := "Operations - " + ls.location

		rate, err := card.BlendRates.Rate(ls.location, complexity)
		if err != nil {
			logging.Logger.Warn("operations rate lookup failed",
				zap.String("asset", card.Asset),
				zap.String("location", ls.location),
				zap.Error(err))
			items = append(items, types.ErrorEntry(name,
				fmt.Sprintf("Monthly operations in %s could not be calculated", ls.location), err))
			continue
		}

		hours := ls.share.Mul(opsHours)
		amount := effort.Round2(hours.Mul(rate).Mul(multiplier))
		items = append(items, types.LineItem(name, amount,
			fmt.Sprintf("%s hours/month (%s%% of %s) at $%s/h x %s support",
				hours.StringFixed(2),
				ls.share.Mul(decimal.NewFromInt(100)).StringFixed(2),
				opsHours.String(),
				rate.StringFixed(2),
				multiplier.String())))
	}
	return items, nil
}

// Scaled returns round2(quantity x fee x multiplier)
func Scaled(quantity decimal.Decimal, fee decimal.Decimal, multiplier decimal.Decimal) decimal.Decimal {
	return effort.Round2(quantity.Mul(fee).Mul(multiplier))
}

// FeeItem prices a fee-based line item as quantity x fee x multiplier.
// A fee missing from the card becomes an error entry.
func FeeItem(card *ratecard.RateCard, name, feeName string, quantity, multiplier decimal.Decimal, describe func(fee decimal.Decimal) string) types.CostBreakdown {
	fee, err := card.Fee(feeName)
	if err != nil {
		logging.Logger.Warn("fee lookup failed",
			zap.String("asset", card.Asset),
			zap.String("line", name),
			zap.Error(err))
		return types.ErrorEntry(name, fmt.Sprintf("%s could not be calculated", name), err)
	}
	return types.LineItem(name, Scaled(quantity, fee, multiplier), describe(fee))
}
