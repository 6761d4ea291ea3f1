// Package api - API types for cost estimation
// These types define the contract of the /api/v1 endpoints.
package api

import (
	"fmt"

	"asset-cost/core/types"
	"asset-cost/internal/errors"
)

// EstimateRequest is the input to POST /api/v1/estimate
type EstimateRequest = types.AssetCostRequest

// EstimateResponse is the output of POST /api/v1/estimate
type EstimateResponse = types.AssetCostResponse

// BatchRequest is the input to POST /api/v1/estimate/batch
type BatchRequest struct {
	Requests []EstimateRequest `json:"requests"`
}

// BatchResult is the outcome of one request of a batch.
// Exactly one of Response and Error is set.
type BatchResult struct {
	Index    int               `json:"index"`
	Response *EstimateResponse `json:"response,omitempty"`
	Error    *ErrorDetail      `json:"error,omitempty"`
}

// BatchResponse lists results in request order
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// AssetsResponse is the output of GET /api/v1/assets
type AssetsResponse struct {
	Assets []string `json:"assets"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// validateRequest checks the transport-level shape of a request before it
// reaches a calculator.
func validateRequest(req *EstimateRequest) error {
	if req.AssetName == "" {
		return errors.Validation("assetName is required")
	}
	if !req.CommonFields.DeploymentType.Valid() {
		return errors.Validation(fmt.Sprintf("commonFields.deploymentType must be one of %v, got %q",
			types.DeploymentTypes, req.CommonFields.DeploymentType))
	}
	if req.CommonFields.SupportLevel != "" && !req.CommonFields.SupportLevel.Valid() {
		return errors.Validation(fmt.Sprintf("commonFields.supportLevel must be one of %v, got %q",
			types.SupportLevels, req.CommonFields.SupportLevel))
	}
	if req.AssetComponents == nil {
		return errors.Validation("assetComponents is required")
	}
	return nil
}
