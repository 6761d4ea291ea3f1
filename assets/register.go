// Package assets wires the built-in asset calculators into a registry.
package assets

import (
	"sort"

	"go.uber.org/zap"

	"asset-cost/assets/ignition"
	"asset-cost/assets/webplatform"
	"asset-cost/core/calculator"
	"asset-cost/core/ratecard"
	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

// factory builds a calculator from a rate card
type factory struct {
	defaultCard func() *ratecard.RateCard
	build       func(*ratecard.RateCard) calculator.Calculator
}

var builtin = map[string]factory{
	ignition.AssetName: {
		defaultCard: ignition.DefaultRateCard,
		build:       func(c *ratecard.RateCard) calculator.Calculator { return ignition.NewWithRateCard(c) },
	},
	webplatform.AssetName: {
		defaultCard: webplatform.DefaultRateCard,
		build:       func(c *ratecard.RateCard) calculator.Calculator { return webplatform.NewWithRateCard(c) },
	},
}

// SupportedAssets lists the built-in asset names
func SupportedAssets() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRateCard returns the built-in rate card of an asset
func DefaultRateCard(asset string) (*ratecard.RateCard, error) {
	f, ok := builtin[asset]
	if !ok {
		return nil, errors.NotFound("asset", asset)
	}
	return f.defaultCard(), nil
}

// RateCard returns the built-in card of an asset with the HCL file at
// overridePath applied. An empty path returns the built-in card.
func RateCard(asset, overridePath string) (*ratecard.RateCard, error) {
	card, err := DefaultRateCard(asset)
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return card, nil
	}

	override, err := ratecard.LoadFile(overridePath)
	if err != nil {
		return nil, err
	}
	if override.Asset != asset {
		return nil, errors.Newf(errors.TypeConfig, "rate card file %s is for %q, not %q", overridePath, override.Asset, asset)
	}
	merged, err := card.Merge(override)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("rate card override applied",
		zap.String("asset", asset),
		zap.String("file", overridePath))
	return merged, nil
}

// NewRegistry builds the registry of every built-in calculator.
// overrides maps asset names to HCL rate card files; unknown names are a
// configuration error.
func NewRegistry(overrides map[string]string) (*calculator.Registry, error) {
	for asset := range overrides {
		if _, ok := builtin[asset]; !ok {
			return nil, errors.Newf(errors.TypeConfig, "rate card override for unknown asset %q", asset).
				WithContext("available", SupportedAssets())
		}
	}

	calcs := make([]calculator.Calculator, 0, len(builtin))
	for _, asset := range SupportedAssets() {
		card, err := RateCard(asset, overrides[asset])
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, builtin[asset].build(card))
	}

	registry, err := calculator.NewRegistry(calcs...)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("calculator registry built", zap.Strings("assets", registry.Names()))
	return registry, nil
}
