package insight

import "github.com/ci-tools/cloud-insight/pkg/models/domain"

// Evaluate derives the full dashboard from one snapshot. It is a pure
// function: the snapshot is never mutated and the same input always yields
// the same output.
func Evaluate(snap domain.ReportSnapshot, thresholds domain.Thresholds) domain.Dashboard {
	thresholds = thresholds.Normalized()

	return domain.Dashboard{
		GeneratedAt:     snap.GeneratedAt,
		Status:          EvaluateStatus(snap, thresholds),
		Health:          ScoreHealth(snap.HealthScore, snap.HealthReason),
		Trend:           ClassifyTrend(snap.CostTrend),
		Counts:          CountSeverities(snap),
		TopErrors:       TopErrors(snap.ErrorDetails),
		Recommendations: BuildRecommendations(snap.Recommendations),
		Insights:        snap.AIInsights,
		Alerts:          snap.Alerts,
		CostSummary:     snap.CostSummary,
		LogSummary:      snap.LogSummary,
		TotalCost:       snap.CostTrend.TotalCost,
	}
}
