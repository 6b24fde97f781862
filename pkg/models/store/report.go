package store

// Report mirrors the final_report.json document produced by the upstream
// analyzer. All fields are optional on the wire; defaults are applied when
// mapping into the domain model.
type Report struct {
	Timestamp       string         `json:"timestamp,omitempty"`
	CostSummary     string         `json:"cost_summary,omitempty"`
	LogSummary      string         `json:"log_summary,omitempty"`
	LogLevels       map[string]int `json:"log_levels,omitempty"`
	ErrorDetails    []LogEntry     `json:"error_details,omitempty"`
	WarningDetails  []LogEntry     `json:"warning_details,omitempty"`
	InfoDetails     []LogEntry     `json:"info_details,omitempty"`
	CostHealth      string         `json:"cost_health,omitempty"`
	CostTrend       *CostTrend     `json:"cost_trend,omitempty"`
	HealthScore     *int           `json:"health_score,omitempty"`
	HealthReason    string         `json:"health_reason,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	AIInsights      []AIInsight    `json:"ai_insights,omitempty"`
	Alerts          []Alert        `json:"alerts,omitempty"`
}

type LogEntry struct {
	ID             string             `json:"id"`
	Type           string             `json:"type"`
	Message        string             `json:"message"`
	Timestamp      string             `json:"timestamp,omitempty"`
	Severity       string             `json:"severity,omitempty"`
	Recommendation string             `json:"recommendation,omitempty"`
	RootCause      *RootCauseAnalysis `json:"root_cause_analysis,omitempty"`
}

type RootCauseAnalysis struct {
	RootCause        string   `json:"root_cause,omitempty"`
	RelatedErrors    []string `json:"related_errors,omitempty"`
	EstimatedFixTime string   `json:"estimated_fix_time,omitempty"`
	FixCommand       string   `json:"fix_command,omitempty"`
}

type CostTrend struct {
	TotalCost        float64     `json:"total_cost"`
	ChangePercentage float64     `json:"change_percentage"`
	History          []CostPoint `json:"history,omitempty"`
}

type CostPoint struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

type AIInsight struct {
	Title      string  `json:"title"`
	Finding    string  `json:"finding"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity,omitempty"`
}

type Alert struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
