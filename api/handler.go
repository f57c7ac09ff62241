// Package api - HTTP handlers for capacity estimation
// Handlers decode, validate and delegate. All estimation logic lives in
// core/engine.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"capcost/api/envelope"
	"capcost/core/engine"
)

// Handler serves the estimation routes
type Handler struct {
	engine  *engine.Engine
	log     *zap.Logger
	version string
	now     func() time.Time
}

// NewHandler creates a handler over an engine
func NewHandler(eng *engine.Engine, log *zap.Logger, version string) *Handler {
	return &Handler{
		engine:  eng,
		log:     log,
		version: version,
		now:     time.Now,
	}
}

// HandleEstimate handles POST /api/estimate
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var body DescriptionEstimateRequest
	if !h.decode(w, r, &body) {
		return
	}

	req, err := body.validate(h.engine.Catalog())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.engine.Estimate(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	envelope.WriteJSON(w, http.StatusOK, resp)
}

// HandleEstimateDirect handles POST /api/estimate/direct
func (h *Handler) HandleEstimateDirect(w http.ResponseWriter, r *http.Request) {
	var body DirectEstimateRequest
	if !h.decode(w, r, &body) {
		return
	}

	req, err := body.validate(h.engine.Catalog())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.engine.EstimateDirect(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	envelope.WriteJSON(w, http.StatusOK, resp)
}

// HandleCategories handles GET /api/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	envelope.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: h.engine.Categories()})
}

// HandleFeatures handles GET /api/features
func (h *Handler) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	envelope.WriteJSON(w, http.StatusOK, FeaturesResponse{Features: h.engine.Features()})
}

// HandleBenchmarks handles GET /api/benchmarks. With a category query it
// returns that benchmark only.
func (h *Handler) HandleBenchmarks(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		envelope.WriteJSON(w, http.StatusOK, BenchmarksResponse{Benchmarks: h.engine.Benchmarks()})
		return
	}

	b, err := h.engine.Benchmark(category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	envelope.WriteJSON(w, http.StatusOK, BenchmarkResponse{Benchmark: b})
}

// HandleHealth handles GET /api/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	envelope.WriteJSON(w, http.StatusOK, HealthResponse{
		Health:  h.engine.Health(h.now()),
		Version: h.version,
	})
}

// decode reads a bounded JSON body into v. It writes the error response
// and returns false when the body cannot be decoded.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, envelope.CodeInvalidJSON,
			"request body is not valid JSON: "+err.Error(), requestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := envelope.StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", requestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	envelope.WriteErr(w, err, requestID(r.Context()))
}
