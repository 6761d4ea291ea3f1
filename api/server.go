// Package api - Thin HTTP layer over the calculator registry
// The API is ONLY responsible for: input decoding, dispatch, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-cost/core/calculator"
	"asset-cost/internal/config"
	"asset-cost/internal/logging"
)

// RequestIDHeader carries the request ID on every response
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const loggerKey ctxKey = iota

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
	cfg     config.ServerConfig
}

// NewServer creates a new API server
func NewServer(version string, registry *calculator.Registry, cfg config.ServerConfig) *Server {
	s := &Server{
		handler: NewHandler(registry, cfg.BatchConcurrency, cfg.MaxBatchSize),
		mux:     http.NewServeMux(),
		version: version,
		cfg:     cfg,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /api/v1/estimate", s.handler.HandleEstimate)
	s.mux.HandleFunc("POST /api/v1/estimate/batch", s.handler.HandleBatch)
	s.mux.HandleFunc("GET /api/v1/assets", s.handler.HandleAssets)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"assets":  s.handler.registry.Len(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "asset-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// statusRecorder captures the response status for access logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ServeHTTP implements http.Handler.
// Every request gets an ID, echoed from the client when present, and one
// access log line.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, requestID)

	log := logging.Logger.With(zap.String("request_id", requestID))
	r = r.WithContext(context.WithValue(r.Context(), loggerKey, log))

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	log.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

// requestLogger returns the request-scoped logger
func requestLogger(r *http.Request) *zap.Logger {
	if log, ok := r.Context().Value(loggerKey).(*zap.Logger); ok {
		return log
	}
	return logging.Logger
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
		IdleTimeout:  s.cfg.IdleTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
