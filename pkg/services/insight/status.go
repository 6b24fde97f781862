package insight

import "github.com/ci-tools/cloud-insight/pkg/models/domain"

// EvaluateStatus combines the analyzer's cost-health flag with log severity
// counts into the overall label and the two area dots.
//
// The log dot only turns red on critical entries; plain errors stay visible
// in the counts but never escalate the dot. Unrecognized cost-health values
// map to green so a bad flag degrades the display rather than alarming it.
func EvaluateStatus(snap domain.ReportSnapshot, thresholds domain.Thresholds) domain.Status {
	thresholds = thresholds.Normalized()
	counts := CountSeverities(snap)

	return domain.Status{
		Overall: overallLabel(snap.CostHealth, counts, thresholds),
		CostDot: costDot(snap.CostHealth),
		LogDot:  logDot(counts),
	}
}

func costDot(health domain.CostHealth) domain.DotColor {
	switch health {
	case domain.CostHealthCritical:
		return domain.DotRed
	case domain.CostHealthWarning:
		return domain.DotYellow
	default:
		return domain.DotGreen
	}
}

func logDot(counts domain.SeverityCounts) domain.DotColor {
	switch {
	case counts.Critical > 0:
		return domain.DotRed
	case counts.Warning > 0:
		return domain.DotYellow
	default:
		return domain.DotGreen
	}
}

func overallLabel(health domain.CostHealth, counts domain.SeverityCounts, t domain.Thresholds) domain.StatusLabel {
	switch {
	case counts.Critical > t.CriticalLogCount || health == domain.CostHealthCritical:
		return domain.StatusCritical
	case counts.Critical > 0 || counts.Warning > 0 || health == domain.CostHealthWarning:
		return domain.StatusWarning
	default:
		return domain.StatusNominal
	}
}
