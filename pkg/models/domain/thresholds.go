package domain

const (
	DefaultCriticalLogCount       = 5
	DefaultCostIncreasePercentage = 15.0
)

// Thresholds hold the numeric limits used when deriving status. Zero values
// mean "not configured" and are replaced by defaults via Normalized.
type Thresholds struct {
	// CriticalLogCount is the critical-entry count above which the overall
	// status escalates to Critical.
	CriticalLogCount int

	// CostIncreasePercentage is surfaced for display and annotation only;
	// it does not drive status escalation.
	CostIncreasePercentage float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalLogCount:       DefaultCriticalLogCount,
		CostIncreasePercentage: DefaultCostIncreasePercentage,
	}
}

func (t Thresholds) Normalized() Thresholds {
	if t.CriticalLogCount <= 0 {
		t.CriticalLogCount = DefaultCriticalLogCount
	}
	if t.CostIncreasePercentage <= 0 {
		t.CostIncreasePercentage = DefaultCostIncreasePercentage
	}
	return t
}
