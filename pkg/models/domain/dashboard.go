package domain

import "time"

type DotColor string

const (
	DotGreen  DotColor = "green"
	DotYellow DotColor = "yellow"
	DotRed    DotColor = "red"
)

type StatusLabel string

const (
	StatusNominal  StatusLabel = "Nominal"
	StatusWarning  StatusLabel = "Warning"
	StatusCritical StatusLabel = "Critical"
)

// Status summarizes one snapshot into an overall label plus two independent
// area indicators.
type Status struct {
	Overall StatusLabel
	CostDot DotColor
	LogDot  DotColor
}

type HealthLabel string

const (
	HealthHealthy  HealthLabel = "Healthy"
	HealthStable   HealthLabel = "Stable"
	HealthDegraded HealthLabel = "Degraded"
)

type HealthSummary struct {
	// Score is clamped to [0, 100] and doubles as the visual intensity.
	Score  int
	Label  HealthLabel
	Reason string
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

type Trend struct {
	Direction        TrendDirection
	ChangePercentage float64
	// Formatted carries the signed two-decimal percentage, e.g. "+12.50%".
	Formatted string
}

type SeverityCounts struct {
	Critical int
	Error    int
	Warning  int
	Info     int
}

func (c SeverityCounts) Total() int {
	return c.Critical + c.Error + c.Warning + c.Info
}

// Drilldown backs the modal detail view for one severity. CountOnly is set
// when the report carries a positive count but no detail rows, so callers
// can tell "zero events" apart from "events exist but detail is missing".
type Drilldown struct {
	Severity  Severity
	Count     int
	Entries   []LogEntry
	CountOnly bool
}

type ErrorGroup struct {
	Type  string
	Count int
	// Sample is the first-seen message of the group, truncated for display.
	Sample string
}

// TopErrors lists the most frequent error groups. AllClear distinguishes
// "no errors occurred" from an empty result a caller might misread as
// missing data.
type TopErrors struct {
	Groups   []ErrorGroup
	AllClear bool
}

type Recommendation struct {
	Rank int
	Text string
}

// Recommendations preserves analyzer order. AllOptimal is set instead of an
// empty list so the presentation layer can render a positive affirmation.
type Recommendations struct {
	Items      []Recommendation
	AllOptimal bool
}

// Dashboard is the full set of derived signals for one snapshot.
type Dashboard struct {
	GeneratedAt     *time.Time
	Status          Status
	Health          HealthSummary
	Trend           Trend
	Counts          SeverityCounts
	TopErrors       TopErrors
	Recommendations Recommendations
	Insights        []AIInsight
	Alerts          []Alert
	CostSummary     string
	LogSummary      string
	TotalCost       float64
}
