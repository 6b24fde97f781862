package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ci-tools/cloud-insight/pkg/models/api"
	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
)

type staticProvider struct {
	snap *domain.ReportSnapshot
}

func (p *staticProvider) Current() *domain.ReportSnapshot { return p.snap }

func testSnapshot() *domain.ReportSnapshot {
	score := 85
	return &domain.ReportSnapshot{
		LogLevels: map[domain.Severity]int{
			domain.SeverityCritical: 1,
			domain.SeverityError:    4,
			domain.SeverityWarning:  2,
		},
		ErrorDetails: []domain.LogEntry{
			{ID: "e1", Type: "Timeout", Message: "upstream timed out"},
			{ID: "e2", Type: "Timeout", Message: "again"},
			{ID: "e3", Type: "OOM", Message: "killed", Severity: domain.SeverityCritical},
		},
		CostHealth:      domain.CostHealthOK,
		CostTrend:       domain.CostTrend{TotalCost: 410, ChangePercentage: -2.5},
		HealthScore:     &score,
		HealthReason:    "quiet week",
		Recommendations: []string{"enable s3 lifecycle rules"},
		AIInsights: []domain.AIInsight{
			{Title: "Cost drop", Finding: "f", Action: "a", Confidence: 0.7},
		},
	}
}

func setupServer(t *testing.T, snap *domain.ReportSnapshot) *httptest.Server {
	t.Helper()

	cfg, err := config.LoadAnalysisConfig("/nonexistent/insight.yaml")
	require.NoError(t, err)

	h := NewHandler(&staticProvider{snap: snap}, cfg)

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/status", h.GetStatus)
		r.Get("/logs/{severity}", h.GetLogDetail)
		r.Get("/errors/top", h.GetTopErrors)
		r.Get("/recommendations", h.GetRecommendations)
		r.Get("/insights", h.GetInsights)
		r.Get("/config", h.GetConfig)
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetDashboard(t *testing.T) {
	srv := setupServer(t, testSnapshot())

	var got api.Dashboard
	status := getJSON(t, srv.URL+"/api/v1/dashboard", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Warning", got.Status.Overall)
	assert.Equal(t, "green", got.Status.CostDot)
	assert.Equal(t, "red", got.Status.LogDot)
	assert.Equal(t, 85, got.Health.Score)
	assert.Equal(t, "Healthy", got.Health.Label)
	assert.Equal(t, "down", got.Trend.Direction)
	assert.Equal(t, "-2.50%", got.Trend.Formatted)
	assert.Equal(t, 7, got.LogCounts.Total)
	require.NotEmpty(t, got.TopErrors.Groups)
	assert.Equal(t, "Timeout", got.TopErrors.Groups[0].Type)
}

func TestGetStatus(t *testing.T) {
	srv := setupServer(t, testSnapshot())

	var got api.Status
	status := getJSON(t, srv.URL+"/api/v1/status", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.Status{Overall: "Warning", CostDot: "green", LogDot: "red"}, got)
}

func TestGetLogDetail(t *testing.T) {
	srv := setupServer(t, testSnapshot())

	t.Run("error detail includes critical by default", func(t *testing.T) {
		var got api.LogDetail
		status := getJSON(t, srv.URL+"/api/v1/logs/error", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, got.Entries, 3)
		assert.False(t, got.CountOnly)
	})

	t.Run("errors_only filter drops critical entries", func(t *testing.T) {
		var got api.LogDetail
		status := getJSON(t, srv.URL+"/api/v1/logs/error?filter=errors_only", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, got.Entries, 2)
	})

	t.Run("unknown severity is 404", func(t *testing.T) {
		status := getJSON(t, srv.URL+"/api/v1/logs/fatal", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("count-only when detail rows missing", func(t *testing.T) {
		snap := &domain.ReportSnapshot{
			LogLevels: map[domain.Severity]int{domain.SeverityWarning: 9},
		}
		srv := setupServer(t, snap)

		var got api.LogDetail
		status := getJSON(t, srv.URL+"/api/v1/logs/warning", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, got.CountOnly)
		assert.Equal(t, 9, got.Count)
		assert.Empty(t, got.Entries)
	})
}

func TestGetRecommendations(t *testing.T) {
	t.Run("feed preserves order", func(t *testing.T) {
		srv := setupServer(t, testSnapshot())

		var got api.Recommendations
		status := getJSON(t, srv.URL+"/api/v1/recommendations", &got)

		assert.Equal(t, http.StatusOK, status)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 1, got.Items[0].Rank)
		assert.False(t, got.AllOptimal)
	})

	t.Run("empty feed returns the optimal marker", func(t *testing.T) {
		srv := setupServer(t, &domain.ReportSnapshot{})

		var got api.Recommendations
		status := getJSON(t, srv.URL+"/api/v1/recommendations", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, got.AllOptimal)
		assert.Equal(t, "All systems optimal", got.Message)
	})
}

func TestGetConfig(t *testing.T) {
	srv := setupServer(t, testSnapshot())

	var got api.ConfigResponse
	status := getJSON(t, srv.URL+"/api/v1/config", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, got.AnalysisConfig.AbnormalThresholds.CriticalLogCount)
	assert.Equal(t, 15.0, got.AnalysisConfig.AbnormalThresholds.CostIncreasePercentage)
	assert.Equal(t, "Cloud Insight", got.ProjectInfo.Name)
}

func TestNoSnapshotYetIs503(t *testing.T) {
	srv := setupServer(t, nil)

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/status", "/api/v1/logs/error",
		"/api/v1/errors/top", "/api/v1/recommendations", "/api/v1/insights"} {
		status := getJSON(t, srv.URL+path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, status, "path %s", path)
	}
}
