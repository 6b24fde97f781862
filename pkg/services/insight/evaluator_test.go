package insight

import (
	"testing"
	"time"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() domain.ReportSnapshot {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	score := 72
	return domain.ReportSnapshot{
		GeneratedAt: &ts,
		LogLevels: map[domain.Severity]int{
			domain.SeverityCritical: 1,
			domain.SeverityError:    12,
			domain.SeverityWarning:  8,
			domain.SeverityInfo:     23,
		},
		ErrorDetails: []domain.LogEntry{
			{ID: "e1", Type: "DatabaseTimeout", Message: "connection pool exhausted"},
			{ID: "e2", Type: "DatabaseTimeout", Message: "query timed out"},
			{ID: "e3", Type: "AuthFailure", Message: "token expired"},
		},
		CostHealth: domain.CostHealthWarning,
		CostTrend: domain.CostTrend{
			TotalCost:        512.40,
			ChangePercentage: 22.1,
		},
		HealthScore:     &score,
		HealthReason:    "elevated error rate on api tier",
		Recommendations: []string{"right-size EC2 fleet", "add index on events table"},
	}
}

func TestEvaluate(t *testing.T) {
	d := Evaluate(sampleSnapshot(), domain.Thresholds{})

	assert.Equal(t, domain.StatusWarning, d.Status.Overall)
	assert.Equal(t, domain.DotYellow, d.Status.CostDot)
	assert.Equal(t, domain.DotRed, d.Status.LogDot)

	assert.Equal(t, 72, d.Health.Score)
	assert.Equal(t, domain.HealthStable, d.Health.Label)
	assert.Equal(t, "elevated error rate on api tier", d.Health.Reason)

	assert.Equal(t, domain.TrendUp, d.Trend.Direction)
	assert.Equal(t, "+22.10%", d.Trend.Formatted)
	assert.Equal(t, 512.40, d.TotalCost)

	assert.Equal(t, 44, d.Counts.Total())

	assert.Equal(t, "DatabaseTimeout", d.TopErrors.Groups[0].Type)
	assert.Equal(t, 2, d.TopErrors.Groups[0].Count)

	assert.Len(t, d.Recommendations.Items, 2)
	assert.Equal(t, 1, d.Recommendations.Items[0].Rank)
}

// Evaluate is a pure function: the same snapshot always derives the same
// dashboard and the snapshot itself is left untouched.
func TestEvaluate_Deterministic(t *testing.T) {
	snap := sampleSnapshot()

	first := Evaluate(snap, domain.Thresholds{})
	second := Evaluate(snap, domain.Thresholds{})

	assert.Equal(t, first, second)
	assert.Equal(t, sampleSnapshot(), snap)
}

func TestEvaluate_EmptySnapshotDegradesToDefaults(t *testing.T) {
	d := Evaluate(domain.ReportSnapshot{}, domain.Thresholds{})

	assert.Equal(t, domain.StatusNominal, d.Status.Overall)
	assert.Equal(t, 50, d.Health.Score)
	assert.Equal(t, domain.HealthStable, d.Health.Label)
	assert.Equal(t, NoHealthReason, d.Health.Reason)
	assert.Equal(t, domain.TrendFlat, d.Trend.Direction)
	assert.True(t, d.TopErrors.AllClear)
	assert.True(t, d.Recommendations.AllOptimal)
}
