// Package handler is the HTTP exposure of the checklist authority. It stays
// a thin translation layer; audit semantics live in the service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"a11ycheck/internal/checklist/models"
	"a11ycheck/internal/checklist/schema"
	"a11ycheck/internal/platform/metrics"
	"a11ycheck/internal/platform/middleware"
	derrors "a11ycheck/pkg/domain-errors"
)

// Service defines the checklist operations the HTTP layer delegates to.
type Service interface {
	Load(ctx context.Context, identity, componentPath, componentName, version string) (*models.LoadChecklistResponse, error)
	Save(ctx context.Context, identity string, rec *models.Record) (*models.SaveChecklistResponse, error)
	ComponentHash(ctx context.Context, componentPath string) (models.ComponentHashResponse, error)
	All(ctx context.Context) ([]*models.Record, error)
	Outdated(ctx context.Context) ([]*models.Record, error)
	Failing(ctx context.Context) ([]*models.Record, error)
}

// Handler handles the checklist endpoints.
type Handler struct {
	logger    *slog.Logger
	checklist Service
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
}

// New creates a Handler.
func New(checklist Service, logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		logger:    logger,
		checklist: checklist,
		metrics:   m,
		gatherer:  gatherer,
	}
}

// Router wires all endpoints with the shared middleware chain.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(h.metrics))

	r.Get("/a11y-checklist/{identity}", h.handleLoadChecklist)
	r.Put("/a11y-checklist/{identity}", h.handleSaveChecklist)
	r.Get("/a11y-component-hash", h.handleComponentHash)
	r.Get("/a11y-checklists", h.handleListAll)
	r.Get("/a11y-checklists/outdated", h.handleListOutdated)
	r.Get("/a11y-checklists/failing", h.handleListFailing)
	r.Get("/health", h.handleHealth)
	if h.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (h *Handler) handleLoadChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")
	componentPath := r.URL.Query().Get("componentPath")
	componentName := r.URL.Query().Get("componentName")
	version := r.URL.Query().Get("wcagVersion")

	if componentPath == "" {
		writeError(w, derrors.New(derrors.CodeBadRequest, "componentPath query parameter is required"))
		return
	}

	resp, err := h.checklist.Load(ctx, identity, componentPath, componentName, version)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load checklist",
			"request_id", middleware.GetRequestID(ctx),
			"identity", identity,
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.ChecklistsLoaded.Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSaveChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")

	var req models.SaveChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Checklist == nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "checklist is required in request body"))
		return
	}
	if req.Identity != identity {
		writeError(w, derrors.New(derrors.CodeBadRequest, "identity in URL must match identity in body"))
		return
	}

	resp, err := h.checklist.Save(ctx, identity, req.Checklist)
	if err != nil {
		if derrors.Is(err, derrors.CodeValidation) {
			h.metrics.ValidationFailures.Inc()
			h.logger.WarnContext(ctx, "rejected invalid checklist",
				"request_id", middleware.GetRequestID(ctx),
				"identity", identity,
				"error", err.Error(),
			)
			writeError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to save checklist",
			"request_id", middleware.GetRequestID(ctx),
			"identity", identity,
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.ChecklistsSaved.Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleComponentHash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	componentPath := r.URL.Query().Get("componentPath")
	if componentPath == "" {
		writeError(w, derrors.New(derrors.CodeBadRequest, "componentPath query parameter is required"))
		return
	}

	resp, err := h.checklist.ComponentHash(ctx, componentPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	h.writeRecords(w, r, h.checklist.All)
}

func (h *Handler) handleListOutdated(w http.ResponseWriter, r *http.Request) {
	h.writeRecords(w, r, h.checklist.Outdated)
}

func (h *Handler) handleListFailing(w http.ResponseWriter, r *http.Request) {
	h.writeRecords(w, r, h.checklist.Failing)
}

func (h *Handler) writeRecords(w http.ResponseWriter, r *http.Request, query func(context.Context) ([]*models.Record, error)) {
	ctx := r.Context()
	records, err := query(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enumerate checklists",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}
	if records == nil {
		records = []*models.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a domain error into the JSON error envelope.
// Validation errors keep their field paths in the details so editors can
// highlight the offending items.
func writeError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	resp := models.ErrorResponse{Error: string(code), Details: err.Error()}

	var se *schema.Error
	if errors.As(err, &se) {
		resp.Details = se.Error()
	}
	writeJSON(w, derrors.ToHTTPStatus(code), resp)
}
