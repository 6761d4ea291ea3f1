package calculator

import (
	"github.com/shopspring/decimal"

	"asset-cost/core/types"
)

// deploymentMultipliers scale deployment-sensitive build line items
var deploymentMultipliers = map[types.DeploymentType]float64{
	types.DeploymentOnPremise: 1.2,
	types.DeploymentCloud:     1.0,
	types.DeploymentHybrid:    1.3,
	types.DeploymentManaged:   1.5,
}

// supportMultipliers scale support and maintenance line items
var supportMultipliers = map[types.SupportLevel]float64{
	types.SupportBasic:    1.0,
	types.SupportStandard: 1.2,
	types.SupportPremium:  1.5,
}

// DeploymentMultiplier returns the build multiplier of a deployment type.
// Unrecognized values use 1.0.
func DeploymentMultiplier(d types.DeploymentType) decimal.Decimal {
	if m, ok := deploymentMultipliers[d]; ok {
		return decimal.NewFromFloat(m)
	}
	return decimal.NewFromInt(1)
}

// SupportMultiplier returns the multiplier of a support level.
// Absent or unrecognized values use 1.0.
func SupportMultiplier(s types.SupportLevel) decimal.Decimal {
	if m, ok := supportMultipliers[s]; ok {
		return decimal.NewFromFloat(m)
	}
	return decimal.NewFromInt(1)
}
