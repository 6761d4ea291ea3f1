// Package webplatform prices web application platform instances.
package webplatform

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"asset-cost/core/calculator"
	"asset-cost/core/effort"
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
	"asset-cost/internal/logging"
)

// Specific field keys
const (
	FieldDatabaseSizeGB   = "databaseSizeGB"
	FieldStorageGB        = "storageGB"
	FieldEnvironmentCount = "environmentCount"
)

// Calculator implements calculator.Calculator for web platforms
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
		card: card,
		policy: calculator.ComplexityPolicy{
			Default: types.ComplexityMedium,
		},
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

type sizing struct {
	databaseGB   float64
	storageGB    float64
	environments int
}

func readSizing(fields types.SpecificFields) (sizing, error) {
	var s sizing
	var err error
	if s.databaseGB, err = fields.NonNegativeOrDefault(FieldDatabaseSizeGB, 0); err != nil {
		return s, err
	}
	if s.storageGB, err = fields.NonNegativeOrDefault(FieldStorageGB, 0); err != nil {
		return s, err
	}
	if s.environments, err = fields.IntOrDefault(FieldEnvironmentCount, 1, 1); err != nil {
		return s, err
	}
	return s, nil
}

// CalculateBuildCost computes the one-time setup cost
func (c *Calculator) CalculateBuildCost(ctx context.Context, req *types.AssetCostRequest) (*types.BuildCost, error) {
	complexity, err := c.policy.Resolve(AssetName, req.Complexity)
	if err != nil {
		return nil, err
	}
	s, err := readSizing(req.SpecificFields)
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

	deployment := calculator.DeploymentMultiplier(req.CommonFields.DeploymentType)

	items = append(items, calculator.FeeItem(c.card, "Environment Provisioning", FeeEnvironmentSetup,
		decimal.NewFromInt(int64(s.environments)), deployment,
		func(fee decimal.Decimal) string {
			return fmt.Sprintf("%d environment(s) at $%s x %s %s deployment",
				s.environments, fee.StringFixed(2), deployment.String(), req.CommonFields.DeploymentType)
		}))

	if s.databaseGB > 0 {
		items = append(items, c.databaseSetup(decimal.NewFromFloat(s.databaseGB), deployment))
	}
	if s.storageGB > 0 {
		items = append(items, calculator.FeeItem(c.card, "Storage Setup", FeeStorageSetupPerGB,
			decimal.NewFromFloat(s.storageGB), deployment,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%s GB at $%s/GB x %s deployment", decimal.NewFromFloat(s.storageGB).String(), fee.String(), deployment.String())
			}))
	}

	return types.NewBuildCost(items), nil
}

// databaseSetup prices (base + size x per-GB) x deployment multiplier
func (c *Calculator) databaseSetup(sizeGB, deployment decimal.Decimal) types.CostBreakdown {
	const name = "Database Setup"
	base, err := c.card.Fee(FeeDatabaseSetupBase)
	if err == nil {
		var perGB decimal.Decimal
		if perGB, err = c.card.Fee(FeeDatabaseSetupPerGB); err == nil {
			amount := effort.Round2(base.Add(sizeGB.Mul(perGB)).Mul(deployment))
			return types.LineItem(name, amount,
				fmt.Sprintf("($%s base + %s GB at $%s/GB) x %s deployment",
					base.StringFixed(2), sizeGB.String(), perGB.String(), deployment.String()))
		}
	}
	logging.Logger.Warn("fee lookup failed",
		zap.String("asset", c.card.Asset),
		zap.String("line", name),
		zap.Error(err))
	return types.ErrorEntry(name, name+" could not be calculated", err)
}

// CalculateRunCost computes the monthly operating cost
func (c *Calculator) CalculateRunCost(ctx context.Context, req *types.AssetCostRequest) (*types.RunCost, error) {
	complexity, err := c.policy.Resolve(AssetName, req.Complexity)
	if err != nil {
		return nil, err
	}
	s, err := readSizing(req.SpecificFields)
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

	envs := decimal.NewFromInt(int64(s.environments))
	if s.databaseGB > 0 {
		size := decimal.NewFromFloat(s.databaseGB)
		items = append(items, calculator.FeeItem(c.card, "Database Hosting", FeeDatabaseHostingPerGB, size, envs,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%s GB at $%s/GB/month x %d environment(s)", size.String(), fee.String(), s.environments)
			}))
	}
	if s.storageGB > 0 {
		size := decimal.NewFromFloat(s.storageGB)
		items = append(items, calculator.FeeItem(c.card, "Storage", FeeStoragePerGB, size, envs,
			func(fee decimal.Decimal) string {
				return fmt.Sprintf("%s GB at $%s/GB/month x %d environment(s)", size.String(), fee.String(), s.environments)
			}))
	}

	multiplier := calculator.SupportMultiplier(support)
	items = append(items, calculator.FeeItem(c.card, "Maintenance & Support", FeeMaintenanceAndSupport,
		decimal.NewFromInt(1), multiplier,
		func(fee decimal.Decimal) string {
			return fmt.Sprintf("$%s/month x %s support", fee.StringFixed(2), multiplier.String())
		}))

	return types.NewRunCost(types.PeriodMonthly, items), nil
}
