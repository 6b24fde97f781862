package insight

import "github.com/ci-tools/cloud-insight/pkg/models/domain"

// NoHealthReason substitutes a missing explanation; the reason is otherwise
// passed through verbatim and never synthesized.
const NoHealthReason = "No data available"

const neutralHealthScore = 50

// ScoreHealth maps the analyzer's 0-100 score and free-text reason to a
// qualitative label plus a visual intensity equal to the clamped score.
func ScoreHealth(score *int, reason string) domain.HealthSummary {
	value := neutralHealthScore
	if score != nil {
		value = clampScore(*score)
	}

	if reason == "" {
		reason = NoHealthReason
	}

	return domain.HealthSummary{
		Score:  value,
		Label:  healthLabel(value),
		Reason: reason,
	}
}

func healthLabel(score int) domain.HealthLabel {
	switch {
	case score >= 80:
		return domain.HealthHealthy
	case score < 50:
		return domain.HealthDegraded
	default:
		return domain.HealthStable
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
