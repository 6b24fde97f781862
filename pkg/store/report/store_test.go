package report

import (
	"testing"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		data := []byte(`{
			"timestamp": "2025-01-15T10:30:00Z",
			"cost_summary": "Total: $500.00, EC2: $200.00",
			"log_levels": {"critical": 2, "error": 12, "warning": 8, "info": 23},
			"error_details": [
				{"id": "e1", "type": "Timeout", "message": "upstream timed out", "severity": "error"}
			],
			"cost_health": "warning",
			"cost_trend": {"total_cost": 500.0, "change_percentage": -4.2,
				"history": [{"date": "2025-01-14", "cost": 522.0}]},
			"health_score": 81,
			"health_reason": "costs trending down",
			"recommendations": ["review idle instances"],
			"ai_insights": [
				{"title": "EC2 spike", "finding": "f", "action": "a", "confidence": 0.92, "severity": "warning"}
			],
			"alerts": [{"severity": "high", "category": "cost", "message": "EC2 costs increased by 22%"}]
		}`)

		snap, err := Parse(data)
		require.NoError(t, err)

		require.NotNil(t, snap.GeneratedAt)
		assert.Equal(t, 2, snap.LogLevels[domain.SeverityCritical])
		assert.Equal(t, 12, snap.LogLevels[domain.SeverityError])
		require.Len(t, snap.ErrorDetails, 1)
		assert.Equal(t, "Timeout", snap.ErrorDetails[0].Type)
		assert.Equal(t, domain.CostHealthWarning, snap.CostHealth)
		assert.Equal(t, -4.2, snap.CostTrend.ChangePercentage)
		require.NotNil(t, snap.HealthScore)
		assert.Equal(t, 81, *snap.HealthScore)
		assert.Equal(t, []string{"review idle instances"}, snap.Recommendations)
		require.Len(t, snap.AIInsights, 1)
		assert.Equal(t, 0.92, snap.AIInsights[0].Confidence)
		require.Len(t, snap.Alerts, 1)
	})

	t.Run("minimal document degrades to defaults", func(t *testing.T) {
		snap, err := Parse([]byte(`{}`))
		require.NoError(t, err)

		assert.Nil(t, snap.GeneratedAt)
		assert.Nil(t, snap.ErrorDetails)
		assert.Nil(t, snap.HealthScore)
		assert.Zero(t, snap.LogLevels[domain.SeverityCritical])
	})

	t.Run("unknown timestamp format keeps freshness unknown", func(t *testing.T) {
		snap, err := Parse([]byte(`{"timestamp": "yesterday-ish"}`))
		require.NoError(t, err)
		assert.Nil(t, snap.GeneratedAt)
	})

	t.Run("not a document at all", func(t *testing.T) {
		for _, raw := range []string{"", "not json", `"just a string"`, `[1, 2, 3]`} {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformedReport, "input %q", raw)
		}
	})
}
