package webplatform

import (
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
)

// AssetName is the registry key of the web platform calculator
const AssetName = "webplatform"

// Fee names read from the rate card
const (
	FeeEnvironmentSetup      = "environment_setup"
	FeeDatabaseSetupBase     = "database_setup_base"
	FeeDatabaseSetupPerGB    = "database_setup_per_gb"
	FeeStorageSetupPerGB     = "storage_setup_per_gb"
	FeeDatabaseHostingPerGB  = "database_hosting_per_gb"
	FeeStoragePerGB          = "storage_per_gb"
	FeeMaintenanceAndSupport = "maintenance_support"
)

// DefaultRateCard returns the built-in web platform pricing data
func DefaultRateCard() *ratecard.RateCard {
	return &ratecard.RateCard{
		Asset: AssetName,
		BlendRates: map[string]map[types.Complexity]float64{
			"USA": {
				types.ComplexityXSmall: 100,
				types.ComplexitySmall:  110,
				types.ComplexityMedium: 125,
				types.ComplexityLarge:  140,
				types.ComplexityXLarge: 155,
			},
			"Mexico": {
				types.ComplexityXSmall: 50,
				types.ComplexitySmall:  55,
				types.ComplexityMedium: 62,
				types.ComplexityLarge:  70,
				types.ComplexityXLarge: 78,
			},
			"India": {
				types.ComplexityXSmall: 25,
				types.ComplexitySmall:  28,
				types.ComplexityMedium: 32,
				types.ComplexityLarge:  36,
				types.ComplexityXLarge: 40,
			},
			"Poland": {
				types.ComplexityXSmall: 55,
				types.ComplexitySmall:  60,
				types.ComplexityMedium: 66,
				types.ComplexityLarge:  74,
				types.ComplexityXLarge: 82,
			},
		},
		Effort: map[string]map[types.Complexity]map[string]float64{
			"Frontend": {
				types.ComplexityXSmall: {"USA": 4, "Mexico": 4, "India": 5, "Poland": 4},
				types.ComplexitySmall:  {"USA": 8, "Mexico": 9, "India": 10, "Poland": 8},
				types.ComplexityMedium: {"USA": 16, "Mexico": 17, "India": 19, "Poland": 17},
				types.ComplexityLarge:  {"USA": 28, "Mexico": 30, "India": 33, "Poland": 29},
				types.ComplexityXLarge: {"USA": 44, "Mexico": 47, "India": 52, "Poland": 46},
			},
			"Backend": {
				types.ComplexityXSmall: {"USA": 5, "Mexico": 5, "India": 6, "Poland": 5},
				types.ComplexitySmall:  {"USA": 10, "Mexico": 11, "India": 12, "Poland": 10},
				types.ComplexityMedium: {"USA": 20, "Mexico": 22, "India": 24, "Poland": 21},
				types.ComplexityLarge:  {"USA": 34, "Mexico": 36, "India": 40, "Poland": 35},
				types.ComplexityXLarge: {"USA": 54, "Mexico": 57, "India": 62, "Poland": 56},
			},
			"Database": {
				types.ComplexityXSmall: {"USA": 2, "Mexico": 2, "India": 3, "Poland": 2},
				types.ComplexitySmall:  {"USA": 4, "Mexico": 4, "India": 5, "Poland": 4},
				types.ComplexityMedium: {"USA": 8, "Mexico": 9, "India": 10, "Poland": 8},
				types.ComplexityLarge:  {"USA": 14, "Mexico": 15, "India": 16, "Poland": 14},
				types.ComplexityXLarge: {"USA": 22, "Mexico": 24, "India": 25, "Poland": 23},
			},
			"Integration": {
				types.ComplexityXSmall: {"USA": 3, "Mexico": 3, "India": 4, "Poland": 3},
				types.ComplexitySmall:  {"USA": 6, "Mexico": 6, "India": 7, "Poland": 6},
				types.ComplexityMedium: {"USA": 10, "Mexico": 11, "India": 12, "Poland": 10},
				types.ComplexityLarge:  {"USA": 18, "Mexico": 19, "India": 21, "Poland": 18},
				types.ComplexityXLarge: {"USA": 28, "Mexico": 30, "India": 33, "Poland": 29},
			},
		},
		OperationsHours: map[types.Complexity]float64{
			types.ComplexityXSmall: 8,
			types.ComplexitySmall:  16,
			types.ComplexityMedium: 32,
			types.ComplexityLarge:  60,
			types.ComplexityXLarge: 100,
		},
		Fees: map[string]float64{
			FeeEnvironmentSetup:      2500,
			FeeDatabaseSetupBase:     1000,
			FeeDatabaseSetupPerGB:    2,
			FeeStorageSetupPerGB:     0.5,
			FeeDatabaseHostingPerGB:  0.25,
			FeeStoragePerGB:          0.023,
			FeeMaintenanceAndSupport: 800,
		},
	}
}
