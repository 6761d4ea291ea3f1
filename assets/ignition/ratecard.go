package ignition

import (
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
)

// AssetName is the registry key of the Ignition calculator
const AssetName = "ignition"

// Fee names read from the rate card
const (
	FeeLicenseSetup        = "license_setup"
	FeeModuleSetup         = "module_setup"
	FeeDeploymentSetup     = "deployment_setup"
	FeeLicenseSubscription = "license_subscription"
	FeeModuleMaintenance   = "module_maintenance"
	FeePlatformSupport     = "platform_support"
)

// DefaultRateCard returns the built-in Ignition pricing data
func DefaultRateCard() *ratecard.RateCard {
	return &ratecard.RateCard{
		Asset: AssetName,
		BlendRates: map[string]map[types.Complexity]float64{
			"USA": {
				types.ComplexityXSmall: 110,
				types.ComplexitySmall:  120,
				types.ComplexityMedium: 135,
				types.ComplexityLarge:  150,
				types.ComplexityXLarge: 165,
			},
			"Mexico": {
				types.ComplexityXSmall: 55,
				types.ComplexitySmall:  60,
				types.ComplexityMedium: 68,
				types.ComplexityLarge:  75,
				types.ComplexityXLarge: 82,
			},
			"India": {
				types.ComplexityXSmall: 28,
				types.ComplexitySmall:  32,
				types.ComplexityMedium: 36,
				types.ComplexityLarge:  40,
				types.ComplexityXLarge: 45,
			},
			"Poland": {
				types.ComplexityXSmall: 60,
				types.ComplexitySmall:  66,
				types.ComplexityMedium: 72,
				types.ComplexityLarge:  80,
				types.ComplexityXLarge: 88,
			},
		},
		Effort: map[string]map[types.Complexity]map[string]float64{
			"ignition": {
				types.ComplexityXSmall: {"USA": 5, "Mexico": 6, "India": 6, "Poland": 5},
				types.ComplexitySmall:  {"USA": 10, "Mexico": 11, "India": 12, "Poland": 10},
				types.ComplexityMedium: {"USA": 20, "Mexico": 22, "India": 24, "Poland": 21},
				types.ComplexityLarge:  {"USA": 35, "Mexico": 38, "India": 40, "Poland": 36},
				types.ComplexityXLarge: {"USA": 55, "Mexico": 60, "India": 63, "Poland": 57},
			},
			"perspective": {
				types.ComplexityXSmall: {"USA": 4, "Mexico": 4, "India": 5, "Poland": 4},
				types.ComplexitySmall:  {"USA": 8, "Mexico": 9, "India": 10, "Poland": 8},
				types.ComplexityMedium: {"USA": 15, "Mexico": 17, "India": 18, "Poland": 16},
				types.ComplexityLarge:  {"USA": 28, "Mexico": 30, "India": 32, "Poland": 29},
				types.ComplexityXLarge: {"USA": 45, "Mexico": 48, "India": 52, "Poland": 46},
			},
			"historian": {
				types.ComplexityXSmall: {"USA": 2, "Mexico": 2, "India": 3, "Poland": 2},
				types.ComplexitySmall:  {"USA": 4, "Mexico": 5, "India": 5, "Poland": 4},
				types.ComplexityMedium: {"USA": 8, "Mexico": 9, "India": 10, "Poland": 8},
				types.ComplexityLarge:  {"USA": 14, "Mexico": 15, "India": 16, "Poland": 14},
				types.ComplexityXLarge: {"USA": 22, "Mexico": 24, "India": 26, "Poland": 23},
			},
			"integration": {
				types.ComplexityXSmall: {"USA": 3, "Mexico": 3, "India": 4, "Poland": 3},
				types.ComplexitySmall:  {"USA": 6, "Mexico": 7, "India": 7, "Poland": 6},
				types.ComplexityMedium: {"USA": 12, "Mexico": 13, "India": 14, "Poland": 12},
				types.ComplexityLarge:  {"USA": 20, "Mexico": 22, "India": 24, "Poland": 21},
				types.ComplexityXLarge: {"USA": 32, "Mexico": 35, "India": 38, "Poland": 33},
			},
		},
		OperationsHours: map[types.Complexity]float64{
			types.ComplexityXSmall: 10,
			types.ComplexitySmall:  20,
			types.ComplexityMedium: 40,
			types.ComplexityLarge:  80,
			types.ComplexityXLarge: 120,
		},
		Fees: map[string]float64{
			FeeLicenseSetup:        500,
			FeeModuleSetup:         750,
			FeeDeploymentSetup:     5000,
			FeeLicenseSubscription: 150,
			FeeModuleMaintenance:   40,
			FeePlatformSupport:     1200,
		},
	}
}
