package adapters

import (
	"time"

	"github.com/ci-tools/cloud-insight/pkg/models/api"
	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// AllOptimalMessage is the positive affirmation shown when the analyzer has
// no recommendations for the current cycle.
const AllOptimalMessage = "All systems optimal"

func MapDashboardDomainToApi(d domain.Dashboard) api.Dashboard {
	out := api.Dashboard{
		GeneratedAt:     formatTimestamp(d.GeneratedAt),
		Status:          MapStatusDomainToApi(d.Status),
		Health:          api.Health{Score: d.Health.Score, Label: string(d.Health.Label), Reason: d.Health.Reason},
		Trend:           MapTrendDomainToApi(d.Trend),
		LogCounts:       MapCountsDomainToApi(d.Counts),
		TopErrors:       MapTopErrorsDomainToApi(d.TopErrors),
		Recommendations: MapRecommendationsDomainToApi(d.Recommendations),
		CostSummary:     d.CostSummary,
		LogSummary:      d.LogSummary,
		TotalCost:       d.TotalCost,
	}

	for _, in := range d.Insights {
		out.Insights = append(out.Insights, api.Insight{
			Title:      in.Title,
			Finding:    in.Finding,
			Action:     in.Action,
			Confidence: in.Confidence,
			Severity:   string(in.Severity),
		})
	}

	for _, a := range d.Alerts {
		out.Alerts = append(out.Alerts, api.Alert{
			Severity: a.Severity,
			Category: a.Category,
			Message:  a.Message,
		})
	}

	return out
}

func MapStatusDomainToApi(s domain.Status) api.Status {
	return api.Status{
		Overall: string(s.Overall),
		CostDot: string(s.CostDot),
		LogDot:  string(s.LogDot),
	}
}

func MapTrendDomainToApi(t domain.Trend) api.Trend {
	return api.Trend{
		Direction:        string(t.Direction),
		ChangePercentage: t.ChangePercentage,
		Formatted:        t.Formatted,
	}
}

func MapCountsDomainToApi(c domain.SeverityCounts) api.LogCounts {
	return api.LogCounts{
		Critical: c.Critical,
		Error:    c.Error,
		Warning:  c.Warning,
		Info:     c.Info,
		Total:    c.Total(),
	}
}

func MapTopErrorsDomainToApi(t domain.TopErrors) api.TopErrors {
	out := api.TopErrors{Groups: []api.ErrorGroup{}, AllClear: t.AllClear}
	for _, g := range t.Groups {
		out.Groups = append(out.Groups, api.ErrorGroup{
			Type:   g.Type,
			Count:  g.Count,
			Sample: g.Sample,
		})
	}
	return out
}

func MapRecommendationsDomainToApi(r domain.Recommendations) api.Recommendations {
	out := api.Recommendations{Items: []api.Recommendation{}, AllOptimal: r.AllOptimal}
	if r.AllOptimal {
		out.Message = AllOptimalMessage
		return out
	}
	for _, item := range r.Items {
		out.Items = append(out.Items, api.Recommendation{Rank: item.Rank, Text: item.Text})
	}
	return out
}

func MapDrilldownDomainToApi(d domain.Drilldown) api.LogDetail {
	out := api.LogDetail{
		Severity:  string(d.Severity),
		Count:     d.Count,
		CountOnly: d.CountOnly,
	}
	for _, e := range d.Entries {
		out.Entries = append(out.Entries, MapLogEntryDomainToApi(e))
	}
	return out
}

func MapLogEntryDomainToApi(e domain.LogEntry) api.LogEntry {
	out := api.LogEntry{
		ID:             e.ID,
		Type:           e.Type,
		Message:        e.Message,
		Timestamp:      formatTimestamp(e.Timestamp),
		Severity:       string(e.Severity),
		Recommendation: e.Recommendation,
	}
	if e.RootCause != nil {
		out.RootCause = &api.RootCause{
			Summary:          e.RootCause.Summary,
			RelatedErrors:    e.RootCause.RelatedErrors,
			EstimatedFixTime: e.RootCause.EstimatedFixTime,
			FixCommand:       e.RootCause.FixCommand,
		}
	}
	return out
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
