package calculator_test

import (
	"strings"
	"testing"

	"asset-cost/core/calculator"
	"asset-cost/core/types"
)

func comp(name string, allocations ...types.ResourceAllocation) types.AssetComponent {
	return types.AssetComponent{Name: name, ResourceModel: allocations}
}

func at(location string, pct float64) types.ResourceAllocation {
	return types.ResourceAllocation{Location: location, Allocation: pct}
}

func TestValidateComponents(t *testing.T) {
	tests := []struct {
		name       string
		components []types.AssetComponent
		wantOK     bool
		contains   []string
	}{
		{
			name:       "single location",
			components: []types.AssetComponent{comp("api", at("USA", 100))},
			wantOK:     true,
		},
		{
			name:       "sum within lower tolerance",
			components: []types.AssetComponent{comp("api", at("USA", 33.33), at("India", 33.33), at("Mexico", 33.33))},
			wantOK:     true,
		},
		{
			name:       "sum within upper tolerance",
			components: []types.AssetComponent{comp("api", at("USA", 50.01), at("India", 50))},
			wantOK:     true,
		},
		{
			name:       "no components",
			components: nil,
			contains:   []string{"no components specified"},
		},
		{
			name:       "sum above tolerance",
			components: []types.AssetComponent{comp("api", at("USA", 50.02), at("India", 50))},
			contains:   []string{`component "api"`, "100.02"},
		},
		{
			name:       "sum below tolerance",
			components: []types.AssetComponent{comp("api", at("USA", 49.98), at("India", 50))},
			contains:   []string{`component "api"`, "99.98"},
		},
		{
			name:       "duplicate names",
			components: []types.AssetComponent{comp("api", at("USA", 100)), comp("api", at("India", 100))},
			contains:   []string{"duplicate component names: api"},
		},
		{
			name:       "empty name",
			components: []types.AssetComponent{comp("", at("USA", 100))},
			contains:   []string{"index 0 has an empty name"},
		},
		{
			name:       "empty resource model",
			components: []types.AssetComponent{comp("api")},
			contains:   []string{`component "api" has an empty resource model`},
		},
		{
			name:       "empty location",
			components: []types.AssetComponent{comp("api", at("", 100))},
			contains:   []string{"empty location"},
		},
		{
			name:       "allocation out of range",
			components: []types.AssetComponent{comp("api", at("USA", 120), at("India", -20))},
			contains:   []string{"must be between 0 and 100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := calculator.ValidateComponents(tt.components)
			if tt.wantOK {
				if len(problems) != 0 {
					t.Fatalf("unexpected problems: %v", problems)
				}
				return
			}
			if len(problems) == 0 {
				t.Fatal("expected problems, got none")
			}
			joined := strings.Join(problems, "; ")
			for _, want := range tt.contains {
				if !strings.Contains(joined, want) {
					t.Errorf("problems %q do not mention %q", joined, want)
				}
			}
		})
	}
}

func TestValidateComponentsReportsEveryProblem(t *testing.T) {
	problems := calculator.ValidateComponents([]types.AssetComponent{
		comp("api", at("USA", 90)),
		comp("web"),
	})
	if len(problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(problems), problems)
	}
}
