// Package api - HTTP handler for cost estimation
// This handler wraps the registry; it contains no cost logic.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"asset-cost/core/calculator"
	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Handler handles estimation requests
type Handler struct {
	registry *calculator.Registry

	batchConcurrency int
	maxBatchSize     int
}

// NewHandler creates a new handler
func NewHandler(registry *calculator.Registry, batchConcurrency, maxBatchSize int) *Handler {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	if maxBatchSize < 1 {
		maxBatchSize = 1
	}
	return &Handler{
		registry:         registry,
		batchConcurrency: batchConcurrency,
		maxBatchSize:     maxBatchSize,
	}
}

// HandleEstimate handles POST /api/v1/estimate
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.execute(r.Context(), &req)
	if err != nil {
		requestLogger(r).Info("estimate rejected",
			zap.String("asset", req.AssetName),
			zap.String("code", string(errors.TypeOf(err))),
			zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// HandleBatch handles POST /api/v1/estimate/batch.
// Requests are calculated independently; one failure does not affect the
// others.
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var batch BatchRequest
	if err := decodeBody(w, r, &batch); err != nil {
		writeError(w, err)
		return
	}
	if len(batch.Requests) == 0 {
		writeError(w, errors.Validation("requests must not be empty"))
		return
	}
	if len(batch.Requests) > h.maxBatchSize {
		writeError(w, errors.Newf(errors.TypeValidation, "batch holds %d requests, the limit is %d",
			len(batch.Requests), h.maxBatchSize))
		return
	}

	results := make([]BatchResult, len(batch.Requests))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.batchConcurrency)

	for i := range batch.Requests {
		g.Go(func() error {
			results[i].Index = i
			resp, err := h.execute(ctx, &batch.Requests[i])
			if err != nil {
				results[i].Error = errorDetail(err)
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}
	// Workers never return an error
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
		}
	}
	requestLogger(r).Info("batch estimated",
		zap.Int("requests", len(results)),
		zap.Int("failed", failed))

	writeJSON(w, BatchResponse{Results: results}, http.StatusOK)
}

// HandleAssets handles GET /api/v1/assets
func (h *Handler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, AssetsResponse{Assets: h.registry.Names()}, http.StatusOK)
}

func (h *Handler) execute(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return h.registry.Calculate(ctx, req)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return errors.Parsing("invalid JSON body", err)
	}
	return nil
}

// statusFor maps an error type to an HTTP status
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeValidation, errors.TypePrecondition, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorDetail(err error) *ErrorDetail {
	if e, ok := errors.AsError(err); ok {
		msg := e.Message
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return &ErrorDetail{Code: string(e.Type), Message: msg}
	}
	return &ErrorDetail{Code: string(errors.TypeInternal), Message: err.Error()}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, ErrorResponse{Error: *errorDetail(err)}, status)
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger.Warn("failed to write response", zap.Error(err))
	}
}
