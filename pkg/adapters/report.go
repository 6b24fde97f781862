package adapters

import (
	"strings"
	"time"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/models/store"
)

// timestampLayouts cover the two formats the analyzer is known to emit:
// RFC 3339 for report-level timestamps and a plain datetime for log rows.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// MapStoreReportToDomainSnapshot applies the documented defaults while
// mapping the wire document into an immutable snapshot: missing fields never
// fail, counts are floored at zero and confidence is clamped into [0, 1].
func MapStoreReportToDomainSnapshot(r store.Report) domain.ReportSnapshot {
	snap := domain.ReportSnapshot{
		GeneratedAt:     parseTimestamp(r.Timestamp),
		CostSummary:     r.CostSummary,
		LogSummary:      r.LogSummary,
		LogLevels:       mapLogLevels(r.LogLevels),
		ErrorDetails:    mapLogEntries(r.ErrorDetails),
		WarningDetails:  mapLogEntries(r.WarningDetails),
		InfoDetails:     mapLogEntries(r.InfoDetails),
		CostHealth:      domain.CostHealth(normalizeSeverity(r.CostHealth)),
		HealthScore:     r.HealthScore,
		HealthReason:    r.HealthReason,
		Recommendations: r.Recommendations,
	}

	if r.CostTrend != nil {
		snap.CostTrend = domain.CostTrend{
			TotalCost:        r.CostTrend.TotalCost,
			ChangePercentage: r.CostTrend.ChangePercentage,
			History:          mapCostHistory(r.CostTrend.History),
		}
	}

	for _, in := range r.AIInsights {
		snap.AIInsights = append(snap.AIInsights, domain.AIInsight{
			Title:      in.Title,
			Finding:    in.Finding,
			Action:     in.Action,
			Confidence: clamp01(in.Confidence),
			Severity:   domain.Severity(normalizeSeverity(in.Severity)),
		})
	}

	for _, a := range r.Alerts {
		snap.Alerts = append(snap.Alerts, domain.Alert{
			Severity: normalizeSeverity(a.Severity),
			Category: a.Category,
			Message:  a.Message,
		})
	}

	return snap
}

func mapLogLevels(levels map[string]int) map[domain.Severity]int {
	if levels == nil {
		return nil
	}
	mapped := make(map[domain.Severity]int, len(levels))
	for k, v := range levels {
		if v < 0 {
			v = 0
		}
		mapped[domain.Severity(normalizeSeverity(k))] = v
	}
	return mapped
}

func mapLogEntries(entries []store.LogEntry) []domain.LogEntry {
	if entries == nil {
		return nil
	}
	mapped := make([]domain.LogEntry, 0, len(entries))
	for _, e := range entries {
		mapped = append(mapped, domain.LogEntry{
			ID:             e.ID,
			Type:           e.Type,
			Message:        e.Message,
			Timestamp:      parseTimestamp(e.Timestamp),
			Severity:       domain.Severity(normalizeSeverity(e.Severity)),
			Recommendation: e.Recommendation,
			RootCause:      mapRootCause(e.RootCause),
		})
	}
	return mapped
}

func mapRootCause(rc *store.RootCauseAnalysis) *domain.RootCauseAnalysis {
	if rc == nil {
		return nil
	}
	return &domain.RootCauseAnalysis{
		Summary:          rc.RootCause,
		RelatedErrors:    rc.RelatedErrors,
		EstimatedFixTime: rc.EstimatedFixTime,
		FixCommand:       rc.FixCommand,
	}
}

func mapCostHistory(points []store.CostPoint) []domain.CostPoint {
	if points == nil {
		return nil
	}
	mapped := make([]domain.CostPoint, 0, len(points))
	for _, p := range points {
		mapped = append(mapped, domain.CostPoint{Date: p.Date, Cost: p.Cost})
	}
	return mapped
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	return nil
}

func normalizeSeverity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
