// Package calculator defines the asset calculator contract and the
// orchestration every calculation goes through.
// Asset types are plugins: they implement Calculator and are added to a
// Registry without touching dispatch.
package calculator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

// Calculator is the interface every asset type implements
type Calculator interface {
	// AssetName returns the asset identity. It is constant and never fails.
	AssetName() string

	// CalculateBuildCost computes the one-time setup cost
	CalculateBuildCost(ctx context.Context, req *types.AssetCostRequest) (*types.BuildCost, error)

	// CalculateRunCost computes the recurring cost
	CalculateRunCost(ctx context.Context, req *types.AssetCostRequest) (*types.RunCost, error)
}

// CalculateCosts runs a full calculation: asset-name check, component
// validation, build cost then run cost, and the response envelope.
// Request-level failures are all-or-nothing; component lookup failures are
// reported inside the build breakdown by the calculator.
func CalculateCosts(ctx context.Context, calc Calculator, req *types.AssetCostRequest) (*types.AssetCostResponse, error) {
	if req == nil {
		return nil, errors.Validation("request is required")
	}

	assetName := calc.AssetName()
	if req.AssetName != assetName {
		return nil, errors.Newf(errors.TypeValidation,
			"asset name mismatch: request is for %q but calculator handles %q", req.AssetName, assetName).
			WithContext("requested", req.AssetName).
			WithContext("calculator", assetName)
	}

	if problems := ValidateComponents(req.AssetComponents); len(problems) > 0 {
		return nil, errors.Newf(errors.TypeValidation, "request validation failed: %s", strings.Join(problems, "; ")).
			WithContext("problems", problems)
	}

	log := logging.Logger.With(
		zap.String("asset", assetName),
		zap.Int("components", len(req.AssetComponents)),
	)
	log.Debug("calculating build cost")

	build, err := calc.CalculateBuildCost(ctx, req)
	if err != nil {
		log.Info("build cost calculation failed", zap.Error(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("calculating run cost")
	run, err := calc.CalculateRunCost(ctx, req)
	if err != nil {
		log.Info("run cost calculation failed", zap.Error(err))
		return nil, err
	}

	resp := &types.AssetCostResponse{
		AssetName: assetName,
		BuildCost: types.BuildCost{
			Total:     types.SumBreakdown(build.Breakdown),
			Currency:  types.CurrencyUSD,
			Breakdown: nonNil(build.Breakdown),
		},
		RunCost: types.RunCost{
			Total:     types.SumBreakdown(run.Breakdown),
			Currency:  types.CurrencyUSD,
			Period:    periodOrMonthly(run.Period),
			Breakdown: nonNil(run.Breakdown),
		},
		EstimationDate: time.Now().UTC(),
	}

	log.Info("cost estimate assembled",
		zap.String("build_total", resp.BuildCost.Total.StringFixed(2)),
		zap.String("run_total", resp.RunCost.Total.StringFixed(2)),
		zap.String("period", string(resp.RunCost.Period)),
		zap.Int("build_errors", types.ErrorCount(resp.BuildCost.Breakdown)),
		zap.Int("run_errors", types.ErrorCount(resp.RunCost.Breakdown)),
	)

	return resp, nil
}

func nonNil(items []types.CostBreakdown) []types.CostBreakdown {
	if items == nil {
		return []types.CostBreakdown{}
	}
	return items
}

func periodOrMonthly(p types.Period) types.Period {
	if p == "" {
		return types.PeriodMonthly
	}
	return p
}
