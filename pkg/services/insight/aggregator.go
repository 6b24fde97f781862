package insight

import (
	"errors"
	"fmt"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// ErrUnknownSeverity is returned when a drill-down is requested for a
// severity outside the critical/error/warning/info set.
var ErrUnknownSeverity = errors.New("unknown severity")

// ErrorFilter selects which entries the error drill-down includes.
type ErrorFilter int

const (
	// FilterIncludeCritical keeps entries tagged critical alongside plain
	// and untagged errors. This is the dashboard default.
	FilterIncludeCritical ErrorFilter = iota

	// FilterErrorsOnly drops critical-tagged entries, leaving plain and
	// untagged errors.
	FilterErrorsOnly
)

// CountSeverities reads the per-severity counts off a snapshot. Missing
// keys read as zero; negative values are floored at zero.
func CountSeverities(snap domain.ReportSnapshot) domain.SeverityCounts {
	return domain.SeverityCounts{
		Critical: severityCount(snap, domain.SeverityCritical),
		Error:    severityCount(snap, domain.SeverityError),
		Warning:  severityCount(snap, domain.SeverityWarning),
		Info:     severityCount(snap, domain.SeverityInfo),
	}
}

func severityCount(snap domain.ReportSnapshot, sev domain.Severity) int {
	n := snap.LogLevels[sev]
	if n < 0 {
		return 0
	}
	return n
}

// Drilldown builds the detail view for one severity. When the snapshot
// reports a positive count but carries no detail sequence the result is
// marked CountOnly, so "zero events" and "detail unavailable" stay
// distinguishable.
func Drilldown(snap domain.ReportSnapshot, sev domain.Severity, filter ErrorFilter) (domain.Drilldown, error) {
	count := severityCount(snap, sev)

	var source []domain.LogEntry
	switch sev {
	case domain.SeverityCritical:
		source = filterEntries(snap.ErrorDetails, func(e domain.LogEntry) bool {
			return e.Severity == domain.SeverityCritical
		})
	case domain.SeverityError:
		source = filterErrorEntries(snap.ErrorDetails, filter)
	case domain.SeverityWarning:
		source = snap.WarningDetails
	case domain.SeverityInfo:
		source = snap.InfoDetails
	default:
		return domain.Drilldown{}, fmt.Errorf("%w: %q", ErrUnknownSeverity, sev)
	}

	d := domain.Drilldown{
		Severity: sev,
		Count:    count,
		Entries:  source,
	}
	if source == nil && count > 0 {
		d.CountOnly = true
	}
	return d, nil
}

func filterErrorEntries(entries []domain.LogEntry, filter ErrorFilter) []domain.LogEntry {
	if entries == nil {
		return nil
	}
	return filterEntries(entries, func(e domain.LogEntry) bool {
		switch e.Severity {
		case domain.SeverityCritical:
			return filter == FilterIncludeCritical
		case domain.SeverityError, "":
			return true
		default:
			return false
		}
	})
}

func filterEntries(entries []domain.LogEntry, keep func(domain.LogEntry) bool) []domain.LogEntry {
	if entries == nil {
		return nil
	}
	filtered := make([]domain.LogEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
