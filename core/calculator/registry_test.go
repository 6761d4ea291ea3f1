package calculator_test

import (
	"context"
	"testing"

	"asset-cost/core/calculator"
	"asset-cost/internal/errors"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		calcs   []calculator.Calculator
		wantErr bool
	}{
		{
			name:  "empty",
			calcs: nil,
		},
		{
			name:  "distinct names",
			calcs: []calculator.Calculator{&stubCalculator{name: "b"}, &stubCalculator{name: "a"}},
		},
		{
			name:    "duplicate name",
			calcs:   []calculator.Calculator{&stubCalculator{name: "a"}, &stubCalculator{name: "a"}},
			wantErr: true,
		},
		{
			name:    "empty name",
			calcs:   []calculator.Calculator{&stubCalculator{name: ""}},
			wantErr: true,
		},
		{
			name:    "nil calculator",
			calcs:   []calculator.Calculator{nil},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := calculator.NewRegistry(tt.calcs...)
			if tt.wantErr {
				if !errors.IsType(err, errors.TypeConfig) {
					t.Errorf("got %v, want config error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Len() != len(tt.calcs) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.calcs))
			}
		})
	}
}

func TestRegistryNamesSortedAndCopied(t *testing.T) {
	r, err := calculator.NewRegistry(&stubCalculator{name: "zeta"}, &stubCalculator{name: "alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("Names() = %v, want [alpha zeta]", names)
	}
	names[0] = "mutated"
	if r.Names()[0] != "alpha" {
		t.Error("Names() exposes internal state")
	}
}

func TestRegistryCalculate(t *testing.T) {
	stub := &stubCalculator{name: "stub"}
	r, err := calculator.NewRegistry(stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Calculate(context.Background(), validRequest("stub")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if stub.buildCalls != 1 || stub.runCalls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", stub.buildCalls, stub.runCalls)
	}

	_, err = r.Calculate(context.Background(), validRequest("missing"))
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("got %v, want not found error", err)
	}

	if _, ok := r.Get("stub"); !ok {
		t.Error("Get(stub) not found")
	}
}
