package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

type CostHealth string

const (
	CostHealthOK       CostHealth = "ok"
	CostHealthWarning  CostHealth = "warning"
	CostHealthCritical CostHealth = "critical"
)

// ReportSnapshot is one complete analyzer report as of a single refresh
// cycle. A snapshot is immutable once built; each successful fetch produces
// a brand-new value that fully replaces the previous one.
type ReportSnapshot struct {
	// GeneratedAt is when the analyzer produced the report. Nil means
	// freshness is unknown.
	GeneratedAt *time.Time

	CostSummary string
	LogSummary  string

	// LogLevels holds per-severity counts. Missing severities read as zero.
	LogLevels map[Severity]int

	// Detail sequences are independent of LogLevels: a report may carry
	// counts without detail rows. Nil means detail was not provided.
	ErrorDetails   []LogEntry
	WarningDetails []LogEntry
	InfoDetails    []LogEntry

	CostHealth CostHealth
	CostTrend  CostTrend

	// HealthScore is 0-100. Nil means the analyzer did not score this cycle.
	HealthScore  *int
	HealthReason string

	// Recommendations keep analyzer order; insertion order is display order.
	Recommendations []string

	AIInsights []AIInsight
	Alerts     []Alert
}

type LogEntry struct {
	ID      string
	Type    string
	Message string

	Timestamp *time.Time

	// Severity is empty when the analyzer did not tag the entry.
	Severity Severity

	Recommendation string
	RootCause      *RootCauseAnalysis
}

type RootCauseAnalysis struct {
	Summary          string
	RelatedErrors    []string
	EstimatedFixTime string
	FixCommand       string
}

type CostTrend struct {
	TotalCost        float64
	ChangePercentage float64
	History          []CostPoint
}

type CostPoint struct {
	Date string
	Cost float64
}

type AIInsight struct {
	Title      string
	Finding    string
	Action     string
	Confidence float64
	Severity   Severity
}

type Alert struct {
	Severity string
	Category string
	Message  string
}
