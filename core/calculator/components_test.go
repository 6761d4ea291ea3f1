package calculator_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"asset-cost/core/calculator"
	"asset-cost/core/ratecard"
	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

func testCard() *ratecard.RateCard {
	return &ratecard.RateCard{
		Asset: "test",
		BlendRates: map[string]map[types.Complexity]float64{
			"USA":   {types.ComplexityMedium: 100},
			"India": {types.ComplexityMedium: 30},
		},
		Effort: map[string]map[types.Complexity]map[string]float64{
			"api": {types.ComplexityMedium: {"USA": 10, "India": 12}},
			"web": {types.ComplexityMedium: {"USA": 5}},
		},
		OperationsHours: map[types.Complexity]float64{types.ComplexityMedium: 40},
		Fees:            map[string]float64{"setup": 250},
	}
}

func TestComplexityPolicy(t *testing.T) {
	required := calculator.ComplexityPolicy{Required: true}
	defaulting := calculator.ComplexityPolicy{Default: types.ComplexityMedium}

	tests := []struct {
		name    string
		policy  calculator.ComplexityPolicy
		raw     string
		want    types.Complexity
		wantErr bool
	}{
		{"required valid", required, "Large", types.ComplexityLarge, false},
		{"required empty", required, "", "", true},
		{"required invalid", required, "huge", "", true},
		{"required wrong case", required, "large", "", true},
		{"default valid", defaulting, "xSmall", types.ComplexityXSmall, false},
		{"default empty", defaulting, "", types.ComplexityMedium, false},
		{"default invalid", defaulting, "huge", types.ComplexityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Resolve("test", tt.raw)
			if tt.wantErr {
				if !errors.IsType(err, errors.TypePrecondition) {
					t.Errorf("got %v, want precondition error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestComponentCostsCatchAndContinue(t *testing.T) {
	components := []types.AssetComponent{
		comp("api", at("USA", 100)),
		comp("web", at("India", 100)), // no India effort for web
	}

	items, err := calculator.ComponentCosts(components, types.ComplexityMedium, testCard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	valid, failed := items[0], items[1]
	if valid.IsError || !valid.Amount.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("api entry = %+v, want 8000", valid)
	}
	if !failed.IsError || !failed.Amount.IsZero() || failed.ErrorMessage == "" {
		t.Errorf("web entry = %+v, want zero-amount error entry", failed)
	}
	if failed.CostComponentName != "web" {
		t.Errorf("error entry name = %q, want web", failed.CostComponentName)
	}

	if total := types.SumBreakdown(items); !total.Equal(valid.Amount) {
		t.Errorf("total = %s, want only the valid amount %s", total, valid.Amount)
	}
}

func TestComponentCostsUnknownComponent(t *testing.T) {
	items, err := calculator.ComponentCosts(
		[]types.AssetComponent{comp("mystery", at("USA", 100))},
		types.ComplexityMedium,
		testCard(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || !items[0].IsError {
		t.Errorf("got %+v, want one error entry", items)
	}
}

func TestOperationsCosts(t *testing.T) {
	components := []types.AssetComponent{
		comp("api", at("USA", 100)),
		comp("web", at("USA", 50), at("India", 50)),
	}

	items, err := calculator.OperationsCosts(components, types.ComplexityMedium, testCard(), types.SupportPremium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	// USA share 75%: 30h x 100 x 1.5; India share 25%: 10h x 30 x 1.5
	want := map[string]string{
		"Operations - USA":   "4500",
		"Operations - India": "450",
	}
	for _, item := range items {
		w, ok := want[item.CostComponentName]
		if !ok {
			t.Errorf("unexpected line %q", item.CostComponentName)
			continue
		}
		if !item.Amount.Equal(decimal.RequireFromString(w)) {
			t.Errorf("%s = %s, want %s", item.CostComponentName, item.Amount, w)
		}
	}
	if items[0].CostComponentName != "Operations - USA" {
		t.Errorf("locations should keep first-appearance order, got %q first", items[0].CostComponentName)
	}
}

func TestOperationsCostsMissingRate(t *testing.T) {
	items, err := calculator.OperationsCosts(
		[]types.AssetComponent{comp("api", at("USA", 50), at("Poland", 50))},
		types.ComplexityMedium,
		testCard(),
		"",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].IsError || !items[0].Amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("USA = %+v, want 2000", items[0])
	}
	if !items[1].IsError {
		t.Errorf("Poland should be an error entry, got %+v", items[1])
	}
}

func TestOperationsCostsMissingHours(t *testing.T) {
	_, err := calculator.OperationsCosts(
		[]types.AssetComponent{comp("api", at("USA", 100))},
		types.ComplexityLarge,
		testCard(),
		types.SupportBasic,
	)
	if !errors.IsType(err, errors.TypeLookup) {
		t.Errorf("got %v, want lookup error", err)
	}
}

func TestFeeItem(t *testing.T) {
	card := testCard()
	describe := func(fee decimal.Decimal) string { return "fee " + fee.String() }

	item := calculator.FeeItem(card, "Setup", "setup", decimal.NewFromInt(3), decimal.RequireFromString("1.2"), describe)
	if item.IsError || !item.Amount.Equal(decimal.NewFromInt(900)) {
		t.Errorf("got %+v, want 900", item)
	}
	if item.Description != "fee 250" {
		t.Errorf("description = %q", item.Description)
	}

	missing := calculator.FeeItem(card, "Other", "other", decimal.NewFromInt(1), decimal.NewFromInt(1), describe)
	if !missing.IsError || !missing.Amount.IsZero() {
		t.Errorf("missing fee = %+v, want error entry", missing)
	}
}

func TestMultipliers(t *testing.T) {
	deployment := map[types.DeploymentType]string{
		types.DeploymentOnPremise: "1.2",
		types.DeploymentCloud:     "1",
		types.DeploymentHybrid:    "1.3",
		types.DeploymentManaged:   "1.5",
		"unknown":                 "1",
	}
	for d, want := range deployment {
		if got := calculator.DeploymentMultiplier(d); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("DeploymentMultiplier(%q) = %s, want %s", d, got, want)
		}
	}

	support := map[types.SupportLevel]string{
		types.SupportBasic:    "1",
		types.SupportStandard: "1.2",
		types.SupportPremium:  "1.5",
		"":                    "1",
	}
	for s, want := range support {
		if got := calculator.SupportMultiplier(s); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("SupportMultiplier(%q) = %s, want %s", s, got, want)
		}
	}
}
