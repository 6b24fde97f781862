package api

type Dashboard struct {
	GeneratedAt     string          `json:"generated_at,omitempty"`
	Status          Status          `json:"status"`
	Health          Health          `json:"health"`
	Trend           Trend           `json:"trend"`
	LogCounts       LogCounts       `json:"log_counts"`
	TopErrors       TopErrors       `json:"top_errors"`
	Recommendations Recommendations `json:"recommendations"`
	Insights        []Insight       `json:"insights,omitempty"`
	Alerts          []Alert         `json:"alerts,omitempty"`
	CostSummary     string          `json:"cost_summary,omitempty"`
	LogSummary      string          `json:"log_summary,omitempty"`
	TotalCost       float64         `json:"total_cost"`
}

type Status struct {
	Overall string `json:"overall"`
	CostDot string `json:"cost_dot"`
	LogDot  string `json:"log_dot"`
}

type Health struct {
	Score  int    `json:"score"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

type Trend struct {
	Direction        string  `json:"direction"`
	ChangePercentage float64 `json:"change_percentage"`
	Formatted        string  `json:"formatted"`
}

type LogCounts struct {
	Critical int `json:"critical"`
	Error    int `json:"error"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

type ErrorGroup struct {
	Type   string `json:"type"`
	Count  int    `json:"count"`
	Sample string `json:"sample"`
}

type TopErrors struct {
	Groups   []ErrorGroup `json:"groups"`
	AllClear bool         `json:"all_clear"`
}

type Recommendation struct {
	Rank int    `json:"rank"`
	Text string `json:"text"`
}

type Recommendations struct {
	Items      []Recommendation `json:"items"`
	AllOptimal bool             `json:"all_optimal"`
	Message    string           `json:"message,omitempty"`
}

type Insight struct {
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

type LogDetail struct {
	Severity  string     `json:"severity"`
	Count     int        `json:"count"`
	CountOnly bool       `json:"count_only"`
	Entries   []LogEntry `json:"entries,omitempty"`
}

type LogEntry struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Message        string     `json:"message"`
	Timestamp      string     `json:"timestamp,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	Recommendation string     `json:"recommendation,omitempty"`
	RootCause      *RootCause `json:"root_cause_analysis,omitempty"`
}

type RootCause struct {
	Summary          string   `json:"root_cause,omitempty"`
	RelatedErrors    []string `json:"related_errors,omitempty"`
	EstimatedFixTime string   `json:"estimated_fix_time,omitempty"`
	FixCommand       string   `json:"fix_command,omitempty"`
}

type AnalysisConfig struct {
	LogFiles           []string   `json:"log_files_to_analyze"`
	CostCategories     []string   `json:"cost_categories_to_watch"`
	AbnormalThresholds Thresholds `json:"abnormal_thresholds"`
}

type Thresholds struct {
	CostIncreasePercentage float64 `json:"cost_increase_percentage"`
	CriticalLogCount       int     `json:"critical_log_count"`
}

type ProjectInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	LastUpdated string `json:"last_updated"`
}

type ConfigResponse struct {
	AnalysisConfig AnalysisConfig `json:"analysis_config"`
	ProjectInfo    ProjectInfo    `json:"project_info"`
}

type Error struct {
	Error string `json:"error"`
}
