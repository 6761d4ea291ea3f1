package calculator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"asset-cost/core/calculator"
	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

// stubCalculator returns canned results and counts calls
type stubCalculator struct {
	name       string
	build      []types.CostBreakdown
	run        []types.CostBreakdown
	buildErr   error
	runErr     error
	buildCalls int
	runCalls   int
	onBuild    func()
}

func (s *stubCalculator) AssetName() string { return s.name }

func (s *stubCalculator) CalculateBuildCost(ctx context.Context, req *types.AssetCostRequest) (*types.BuildCost, error) {
	s.buildCalls++
	if s.onBuild != nil {
		s.onBuild()
	}
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	// Deliberately wrong total; the orchestrator recomputes it
	return &types.BuildCost{Total: decimal.NewFromInt(-1), Breakdown: s.build}, nil
}

func (s *stubCalculator) CalculateRunCost(ctx context.Context, req *types.AssetCostRequest) (*types.RunCost, error) {
	s.runCalls++
	if s.runErr != nil {
		return nil, s.runErr
	}
	return &types.RunCost{Breakdown: s.run}, nil
}

func validRequest(asset string) *types.AssetCostRequest {
	return &types.AssetCostRequest{
		AssetName:       asset,
		Complexity:      "Medium",
		CommonFields:    types.CommonFields{DeploymentType: types.DeploymentCloud},
		AssetComponents: []types.AssetComponent{comp("api", at("USA", 100))},
	}
}

func TestCalculateCostsAssemblesTotals(t *testing.T) {
	stub := &stubCalculator{
		name: "stub",
		build: []types.CostBreakdown{
			types.LineItem("a", decimal.RequireFromString("100.10"), ""),
			types.LineItem("b", decimal.RequireFromString("0.25"), ""),
			types.ErrorEntry("c", "", errors.Lookup("missing")),
		},
		run: []types.CostBreakdown{
			types.LineItem("ops", decimal.RequireFromString("42"), ""),
		},
	}

	resp, err := calculator.CalculateCosts(context.Background(), stub, validRequest("stub"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.AssetName != "stub" {
		t.Errorf("asset name = %q, want stub", resp.AssetName)
	}
	if !resp.BuildCost.Total.Equal(decimal.RequireFromString("100.35")) {
		t.Errorf("build total = %s, want 100.35", resp.BuildCost.Total)
	}
	if !resp.RunCost.Total.Equal(decimal.NewFromInt(42)) {
		t.Errorf("run total = %s, want 42", resp.RunCost.Total)
	}
	if resp.RunCost.Period != types.PeriodMonthly {
		t.Errorf("period = %q, want monthly", resp.RunCost.Period)
	}
	if resp.BuildCost.Currency != types.CurrencyUSD || resp.RunCost.Currency != types.CurrencyUSD {
		t.Error("currency should be USD")
	}
	if resp.EstimationDate.IsZero() {
		t.Error("estimation date not set")
	}
}

func TestCalculateCostsNameMismatchComesFirst(t *testing.T) {
	stub := &stubCalculator{name: "stub"}
	req := validRequest("other")
	req.AssetComponents = nil

	_, err := calculator.CalculateCosts(context.Background(), stub, req)
	if !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "asset name mismatch") {
		t.Errorf("error %q should report the mismatch, not component validation", err)
	}
	if stub.buildCalls != 0 || stub.runCalls != 0 {
		t.Error("calculator invoked despite mismatch")
	}
}

func TestCalculateCostsRejectsInvalidComponents(t *testing.T) {
	tests := []struct {
		name       string
		components []types.AssetComponent
		want       []string
	}{
		{
			name: "no components",
			want: []string{"no components specified"},
		},
		{
			name:       "allocation sum outside tolerance",
			components: []types.AssetComponent{comp("historian", at("USA", 60.02), at("India", 40))},
			want:       []string{"historian", "100.02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCalculator{name: "stub"}
			req := validRequest("stub")
			req.AssetComponents = tt.components

			_, err := calculator.CalculateCosts(context.Background(), stub, req)
			if !errors.IsType(err, errors.TypeValidation) {
				t.Fatalf("got %v, want validation error", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
			if stub.buildCalls != 0 {
				t.Error("build cost calculated for an invalid request")
			}
		})
	}
}

func TestCalculateCostsIsAllOrNothing(t *testing.T) {
	stub := &stubCalculator{
		name:   "stub",
		build:  []types.CostBreakdown{types.LineItem("a", decimal.NewFromInt(1), "")},
		runErr: errors.Precondition("specificFields.licenseCount is required"),
	}

	resp, err := calculator.CalculateCosts(context.Background(), stub, validRequest("stub"))
	if resp != nil {
		t.Error("partial response returned")
	}
	if !errors.IsType(err, errors.TypePrecondition) {
		t.Errorf("got %v, want precondition error", err)
	}
}

func TestCalculateCostsBuildErrorSkipsRun(t *testing.T) {
	stub := &stubCalculator{name: "stub", buildErr: errors.Precondition("complexity is required")}

	if _, err := calculator.CalculateCosts(context.Background(), stub, validRequest("stub")); err == nil {
		t.Fatal("expected an error")
	}
	if stub.runCalls != 0 {
		t.Error("run cost calculated after build failure")
	}
}

func TestCalculateCostsHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &stubCalculator{name: "stub", onBuild: cancel}

	if _, err := calculator.CalculateCosts(ctx, stub, validRequest("stub")); err == nil {
		t.Fatal("expected cancellation error")
	}
	if stub.runCalls != 0 {
		t.Error("run cost calculated after cancellation")
	}
}

func TestCalculateCostsNilRequest(t *testing.T) {
	_, err := calculator.CalculateCosts(context.Background(), &stubCalculator{name: "stub"}, nil)
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("got %v, want validation error", err)
	}
}
