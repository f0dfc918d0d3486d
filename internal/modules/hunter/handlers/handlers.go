// Package handlers provides HTTP handlers for keno and positional analyses.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/aristath/hunter/internal/modules/reports"
	"github.com/aristath/hunter/internal/modules/scoring"
	"github.com/rs/zerolog"
)

// Analyzer runs analyses
type Analyzer interface {
	RunKeno(params hunter.KenoParams) (*hunter.KenoReport, error)
	RunPositional(params hunter.PositionalParams) (*hunter.PositionalReport, error)
}

// Archive stores and reads back finished reports
type Archive interface {
	SaveKeno(report *hunter.KenoReport) (string, error)
	SavePositional(report *hunter.PositionalReport) (string, error)
	Get(id string) (*reports.Record, error)
	List(limit int) ([]reports.Entry, error)
}

// Handler handles analysis HTTP requests
type Handler struct {
	analyzer          Analyzer
	archive           Archive
	kenoDefaults      hunter.KenoParams
	positionalDefault hunter.PositionalParams
	log               zerolog.Logger
}

// NewHandler creates a new analysis handler. Query parameters that are
// omitted take their value from the given defaults.
func NewHandler(
	analyzer Analyzer,
	archive Archive,
	kenoDefaults hunter.KenoParams,
	positionalDefault hunter.PositionalParams,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		analyzer:          analyzer,
		archive:           archive,
		kenoDefaults:      kenoDefaults,
		positionalDefault: positionalDefault,
		log:               log.With().Str("handler", "hunter").Logger(),
	}
}

// HandleKenoAnalysis handles GET /api/keno/analysis
func (h *Handler) HandleKenoAnalysis(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runKeno(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// HandleKenoArchive handles POST /api/keno/analysis/archive
func (h *Handler) HandleKenoArchive(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runKeno(w, r)
	if !ok {
		return
	}

	id, err := h.archive.SaveKeno(report)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to archive keno report")
		h.writeError(w, http.StatusInternalServerError, "Failed to archive report")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     id,
		"report": report,
	})
}

// HandlePositionalAnalysis handles GET /api/positional/analysis
func (h *Handler) HandlePositionalAnalysis(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runPositional(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// HandlePositionalArchive handles POST /api/positional/analysis/archive
func (h *Handler) HandlePositionalArchive(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runPositional(w, r)
	if !ok {
		return
	}

	id, err := h.archive.SavePositional(report)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to archive positional report")
		h.writeError(w, http.StatusInternalServerError, "Failed to archive report")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     id,
		"report": report,
	})
}

// HandleListReports handles GET /api/reports
func (h *Handler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	limit := reports.DefaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.archive.List(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list reports")
		h.writeError(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": entries,
		"count":   len(entries),
	})
}

// HandleGetReport handles GET /api/reports/{id}
func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request, id string) {
	rec, err := h.archive.Get(id)
	if errors.Is(err, reports.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("Failed to get report")
		h.writeError(w, http.StatusInternalServerError, "Failed to get report")
		return
	}

	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) runKeno(w http.ResponseWriter, r *http.Request) (*hunter.KenoReport, bool) {
	params, err := h.kenoParams(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.analyzer.RunKeno(params)
	if err != nil {
		h.writeAnalysisError(w, err)
		return nil, false
	}
	return report, true
}

func (h *Handler) runPositional(w http.ResponseWriter, r *http.Request) (*hunter.PositionalReport, bool) {
	params, err := h.positionalParams(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.analyzer.RunPositional(params)
	if err != nil {
		h.writeAnalysisError(w, err)
		return nil, false
	}
	return report, true
}

func (h *Handler) kenoParams(r *http.Request) (hunter.KenoParams, error) {
	params := h.kenoDefaults
	q := r.URL.Query()

	var err error
	if params.Periods, err = intParam(q.Get("periods"), "periods", params.Periods); err != nil {
		return params, err
	}
	if params.StarCount, err = intParam(q.Get("stars"), "stars", params.StarCount); err != nil {
		return params, err
	}
	if params.TopN, err = intParam(q.Get("top"), "top", params.TopN); err != nil {
		return params, err
	}
	if params.Seed, err = seedParam(q.Get("seed"), params.Seed); err != nil {
		return params, err
	}
	if profile := q.Get("profile"); profile != "" {
		cfg, err := scoring.ConfigForProfile(profile)
		if err != nil {
			return params, err
		}
		params.Scoring = cfg
	}
	return params, nil
}

func (h *Handler) positionalParams(r *http.Request) (hunter.PositionalParams, error) {
	params := h.positionalDefault
	q := r.URL.Query()

	var err error
	if params.Periods, err = intParam(q.Get("periods"), "periods", params.Periods); err != nil {
		return params, err
	}
	if params.TestSize, err = intParam(q.Get("test_size"), "test_size", params.TestSize); err != nil {
		return params, err
	}
	if params.Seed, err = seedParam(q.Get("seed"), params.Seed); err != nil {
		return params, err
	}
	return params, nil
}

func intParam(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func seedParam(raw string, fallback uint64) (uint64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be a non-negative integer")
	}
	return v, nil
}

// writeAnalysisError maps parameter-range errors to 400 and everything else to 500
func (h *Handler) writeAnalysisError(w http.ResponseWriter, err error) {
	if isParameterError(err) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Error().Err(err).Msg("Analysis failed")
	h.writeError(w, http.StatusInternalServerError, "Analysis failed")
}

func isParameterError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidPeriods,
		domain.ErrInvalidStarCount,
		domain.ErrInvalidTestSize,
		domain.ErrInvalidTopN,
		scoring.ErrInvalidConfig,
		scoring.ErrUnknownProfile,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
