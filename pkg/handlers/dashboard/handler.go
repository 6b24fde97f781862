package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ci-tools/cloud-insight/pkg/adapters"
	"github.com/ci-tools/cloud-insight/pkg/models/api"
	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
	"github.com/ci-tools/cloud-insight/pkg/services/insight"
)

const apiVersion = "1.0.0"

// SnapshotProvider hands out the current snapshot. Nil means no report has
// been fetched successfully yet.
type SnapshotProvider interface {
	Current() *domain.ReportSnapshot
}

type Handler struct {
	snapshots  SnapshotProvider
	thresholds domain.Thresholds
	cfg        *config.AnalysisConfig
}

func NewHandler(snapshots SnapshotProvider, cfg *config.AnalysisConfig) *Handler {
	return &Handler{
		snapshots:  snapshots,
		thresholds: cfg.DomainThresholds(),
		cfg:        cfg,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	d := insight.Evaluate(*snap, h.thresholds)
	h.writeJSON(w, r, http.StatusOK, adapters.MapDashboardDomainToApi(d))
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	status := insight.EvaluateStatus(*snap, h.thresholds)
	h.writeJSON(w, r, http.StatusOK, adapters.MapStatusDomainToApi(status))
}

func (h *Handler) GetLogDetail(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	severity := domain.Severity(chi.URLParam(r, "severity"))

	filter := insight.FilterIncludeCritical
	if r.URL.Query().Get("filter") == "errors_only" {
		filter = insight.FilterErrorsOnly
	}

	detail, err := insight.Drilldown(*snap, severity, filter)
	if err != nil {
		if errors.Is(err, insight.ErrUnknownSeverity) {
			h.writeJSON(w, r, http.StatusNotFound, api.Error{Error: err.Error()})
			return
		}
		h.writeJSON(w, r, http.StatusInternalServerError, api.Error{Error: "failed to build drill-down"})
		return
	}

	h.writeJSON(w, r, http.StatusOK, adapters.MapDrilldownDomainToApi(detail))
}

func (h *Handler) GetTopErrors(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, http.StatusOK, adapters.MapTopErrorsDomainToApi(insight.TopErrors(snap.ErrorDetails)))
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	feed := insight.BuildRecommendations(snap.Recommendations)
	h.writeJSON(w, r, http.StatusOK, adapters.MapRecommendationsDomainToApi(feed))
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	insights := make([]api.Insight, 0, len(snap.AIInsights))
	for _, in := range snap.AIInsights {
		insights = append(insights, api.Insight{
			Title:      in.Title,
			Finding:    in.Finding,
			Action:     in.Action,
			Confidence: in.Confidence,
			Severity:   string(in.Severity),
		})
	}

	h.writeJSON(w, r, http.StatusOK, insights)
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp := api.ConfigResponse{
		AnalysisConfig: api.AnalysisConfig{
			LogFiles:       h.cfg.LogFiles,
			CostCategories: h.cfg.CostCategories,
			AbnormalThresholds: api.Thresholds{
				CostIncreasePercentage: h.thresholds.CostIncreasePercentage,
				CriticalLogCount:       h.thresholds.CriticalLogCount,
			},
		},
		ProjectInfo: api.ProjectInfo{
			Name:        h.cfg.ProjectName,
			Version:     apiVersion,
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

// snapshot fetches the current snapshot or answers 503 when none exists
// yet, leaving the caller to render a stale-data state.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (*domain.ReportSnapshot, bool) {
	snap := h.snapshots.Current()
	if snap == nil {
		h.writeJSON(w, r, http.StatusServiceUnavailable, api.Error{Error: "report not available yet"})
		return nil, false
	}
	return snap, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
