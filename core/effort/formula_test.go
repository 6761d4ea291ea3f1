package effort_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"asset-cost/core/effort"
	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

func component(name string, allocations ...types.ResourceAllocation) types.AssetComponent {
	return types.AssetComponent{Name: name, ResourceModel: allocations}
}

func alloc(location string, pct float64) types.ResourceAllocation {
	return types.ResourceAllocation{Location: location, Allocation: pct}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSingleLocationReducesToHoursTimesRate(t *testing.T) {
	rates := effort.BlendRates{"USA": {types.ComplexityMedium: 100}}

	item, err := effort.CalculateEffortBasedComponentCost(
		component("api", alloc("USA", 100)),
		types.ComplexityMedium,
		rates,
		map[string]float64{"USA": 10},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 8 h/day x 10 effort hours x $100
	if !item.Amount.Equal(dec("8000")) {
		t.Errorf("amount = %s, want 8000", item.Amount)
	}
	if item.EffortHours == nil || !item.EffortHours.Equal(dec("80")) {
		t.Errorf("effort hours = %v, want 80", item.EffortHours)
	}
	if item.IsError {
		t.Error("entry marked as error")
	}
	if len(item.EffortBreakdown) != 1 || item.EffortBreakdown[0].DeliveryLocation != "USA" {
		t.Errorf("unexpected effort breakdown: %+v", item.EffortBreakdown)
	}
}

func TestMultipleLocationsUseOwnCalendar(t *testing.T) {
	rates := effort.BlendRates{
		"USA":   {types.ComplexityLarge: 100},
		"India": {types.ComplexityLarge: 30},
	}

	item, err := effort.CalculateEffortBasedComponentCost(
		component("api", alloc("USA", 60), alloc("India", 40)),
		types.ComplexityLarge,
		rates,
		map[string]float64{"USA": 10, "India": 12},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// USA: 0.6 x 8 x 10 = 48h x 100 = 4800
	// India: 0.4 x 9 x 12 = 43.2h x 30 = 1296
	if !item.Amount.Equal(dec("6096")) {
		t.Errorf("amount = %s, want 6096", item.Amount)
	}
	if !item.EffortHours.Equal(dec("91.2")) {
		t.Errorf("effort hours = %s, want 91.2", item.EffortHours)
	}

	sum := decimal.Zero
	for _, d := range item.EffortBreakdown {
		sum = sum.Add(d.EffortAmount)
	}
	if !sum.Equal(item.Amount) {
		t.Errorf("location amounts sum to %s, component amount is %s", sum, item.Amount)
	}
}

func TestLocationAmountsRoundedBeforeSumming(t *testing.T) {
	rates := effort.BlendRates{
		"USA":    {types.ComplexitySmall: 10.00125},
		"Poland": {types.ComplexitySmall: 10.00125},
	}

	item, err := effort.CalculateEffortBasedComponentCost(
		component("api", alloc("USA", 50), alloc("Poland", 50)),
		types.ComplexitySmall,
		rates,
		map[string]float64{"USA": 1, "Poland": 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each location is 4h x 10.00125 = 40.005 -> 40.01.
	// Summing first would give round2(80.01) = 80.01.
	for _, d := range item.EffortBreakdown {
		if !d.EffortAmount.Equal(dec("40.01")) {
			t.Errorf("%s amount = %s, want 40.01", d.DeliveryLocation, d.EffortAmount)
		}
	}
	if !item.Amount.Equal(dec("80.02")) {
		t.Errorf("amount = %s, want 80.02", item.Amount)
	}
}

func TestLookupFailures(t *testing.T) {
	tests := []struct {
		name     string
		location string
		rates    effort.BlendRates
		hours    map[string]float64
	}{
		{
			name:     "missing blend rate",
			location: "USA",
			rates:    effort.BlendRates{"India": {types.ComplexityMedium: 30}},
			hours:    map[string]float64{"USA": 10},
		},
		{
			name:     "missing complexity in blend rate",
			location: "USA",
			rates:    effort.BlendRates{"USA": {types.ComplexitySmall: 90}},
			hours:    map[string]float64{"USA": 10},
		},
		{
			name:     "missing calendar entry",
			location: "Atlantis",
			rates:    effort.BlendRates{"Atlantis": {types.ComplexityMedium: 50}},
			hours:    map[string]float64{"Atlantis": 10},
		},
		{
			name:     "missing effort hours",
			location: "USA",
			rates:    effort.BlendRates{"USA": {types.ComplexityMedium: 100}},
			hours:    map[string]float64{"India": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := effort.CalculateEffortBasedComponentCost(
				component("api", alloc(tt.location, 100)),
				types.ComplexityMedium,
				tt.rates,
				tt.hours,
			)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, errors.TypeLookup) {
				t.Errorf("error type = %s, want %s", errors.TypeOf(err), errors.TypeLookup)
			}
		})
	}
}

func TestHoursPerDay(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"USA", "8"},
		{"Poland", "8"},
		{"Mexico", "9"},
		{"India", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got, err := effort.HoursPerDay(tt.location)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Errorf("HoursPerDay(%s) = %s, want %s", tt.location, got, tt.want)
			}
		})
	}

	if _, err := effort.HoursPerDay("usa"); !errors.IsType(err, errors.TypeLookup) {
		t.Errorf("lowercase location should be a lookup error, got %v", err)
	}
}

func TestTableHoursByLocation(t *testing.T) {
	table := effort.Table{
		"api": {types.ComplexityMedium: {"USA": 12}},
	}

	row, err := table.HoursByLocation("api", types.ComplexityMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row["USA"] != 12 {
		t.Errorf("USA hours = %v, want 12", row["USA"])
	}

	if _, err := table.HoursByLocation("web", types.ComplexityMedium); !errors.IsType(err, errors.TypeLookup) {
		t.Errorf("unknown component: got %v, want lookup error", err)
	}
	if _, err := table.HoursByLocation("api", types.ComplexityLarge); !errors.IsType(err, errors.TypeLookup) {
		t.Errorf("unknown complexity: got %v, want lookup error", err)
	}
}
