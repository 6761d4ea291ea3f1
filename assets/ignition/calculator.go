// Package ignition prices Ignition SCADA platform instances.
// Build cost is component effort plus license, module and deployment setup;
// run cost is monthly operations plus license subscription and support.
package ignition

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"asset-cost/core/calculator"
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
)

// Specific field keys
const (
	FieldLicenseCount = "licenseCount"
	FieldModuleCount  = "moduleCount"
)

// Calculator implements calculator.Calculator for Ignition
type Calculator struct {
	card   *ratecard.RateCard
	policy calculator.ComplexityPolicy
}

// New creates a calculator priced with the built-in rate card
func New() *Calculator {
	return NewWithRateCard(DefaultRateCard())
}

// NewWithRateCard creates a calculator priced with card
func NewWithRateCard(card *ratecard.RateCard) *Calculator {
	return &Calculator{
		card:   card,
		policy: calculator.ComplexityPolicy{Required: true},
	}
}

// AssetName returns the asset identity
func (c *Calculator) AssetName() string {
	return AssetName
}

// RateCard returns the card the calculator prices with
func (c *Calculator) RateCard() *ratecard.RateCard {
	return c.card
}

// CalculateBuildCost computes the one-time setup cost
func (c *Calculator) CalculateBuildCost(ctx context.Context, req *types.AssetCostRequest) (*types.BuildCost, error) {
	complexity, err := c.policy.Resolve(AssetName, req.Complexity)
	if err != nil {
		return nil, err
	}

	// licenseCount is optional at build time but must be valid when given
	licenses, hasLicenses, err := req.SpecificFields.OptionalPositiveInt(FieldLicenseCount)
	if err != nil {
		return nil, err
	}
	modules, err := req.SpecificFields.IntOrDefault(FieldModuleCount, 0, 0)
	if err != nil {
		return nil, err
	}

	items, err := calculator.ComponentCosts(req.AssetComponents, complexity, c.card)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)
	if hasLicenses {
		qty := decimal.NewFromInt(int64(licenses))
		items = append(items, calculator.FeeItem(c.card, "License Setup", FeeLicenseSetup, qty, one,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%d license(s) at $%s setup each", licenses, fee.StringFixed(2))
			}))
	}
	if modules > 0 {
		qty := decimal.NewFromInt(int64(modules))
		items = append(items, calculator.FeeItem(c.card, "Module Setup", FeeModuleSetup, qty, one,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%d module(s) at $%s setup each", modules, fee.StringFixed(2))
			}))
	}

	deployment := calculator.DeploymentMultiplier(req.CommonFields.DeploymentType)
	items = append(items, calculator.FeeItem(c.card, "Deployment Setup", FeeDeploymentSetup, one, deployment,
		func(fee decimal.Decimal) string {
			return fmt.Sprintf("$%s base x %s %s deployment", fee.StringFixed(2), deployment.String(), req.CommonFields.DeploymentType)
		}))

	return types.NewBuildCost(items), nil
}

// CalculateRunCost computes the monthly operating cost
func (c *Calculator) CalculateRunCost(ctx context.Context, req *types.AssetCostRequest) (*types.RunCost, error) {
	complexity, err := c.policy.Resolve(AssetName, req.Complexity)
	if err != nil {
		return nil, err
	}
	licenses, err := req.SpecificFields.RequirePositiveInt(FieldLicenseCount)
	if err != nil {
		return nil, err
	}
	modules, err := req.SpecificFields.IntOrDefault(FieldModuleCount, 0, 0)
	if err != nil {
		return nil, err
	}

	support := req.CommonFields.SupportLevel
	items, err := calculator.OperationsCosts(req.AssetComponents, complexity, c.card, support)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)
	multiplier := calculator.SupportMultiplier(support)

	items = append(items, calculator.FeeItem(c.card, "License Subscription", FeeLicenseSubscription,
		decimal.NewFromInt(int64(licenses)), one,
		func(fee decimal.Decimal) string {
			return fmt.Sprintf("%d license(s) at $%s/month", licenses, fee.StringFixed(2))
		}))
	if modules > 0 {
		items = append(items, calculator.FeeItem(c.card, "Module Maintenance", FeeModuleMaintenance,
			decimal.NewFromInt(int64(modules)), multiplier,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%d module(s) at $%s/month x %s support", modules, fee.StringFixed(2), multiplier.String())
			}))
	}
	items = append(items, calculator.FeeItem(c.card, "Platform Support", FeePlatformSupport, one, multiplier,
		func(fee decimal.Decimal) string {
			return fmt.Sprintf("$%s/month x %s support", fee.StringFixed(2), multiplier.String())
		}))

	return types.NewRunCost(types.PeriodMonthly, items), nil
}
