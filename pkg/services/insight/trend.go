package insight

import (
	"fmt"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// ClassifyTrend turns the cost change percentage into a direction plus a
// signed two-decimal display string. Positive values get an explicit "+";
// negative values already carry their sign.
func ClassifyTrend(trend domain.CostTrend) domain.Trend {
	change := trend.ChangePercentage

	direction := domain.TrendFlat
	switch {
	case change > 0:
		direction = domain.TrendUp
	case change < 0:
		direction = domain.TrendDown
	}

	formatted := fmt.Sprintf("%.2f%%", change)
	if change > 0 {
		formatted = "+" + formatted
	}

	return domain.Trend{
		Direction:        direction,
		ChangePercentage: change,
		Formatted:        formatted,
	}
}
