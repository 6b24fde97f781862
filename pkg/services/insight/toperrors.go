package insight

import (
	"sort"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

const (
	topErrorLimit      = 5
	sampleMessageRunes = 60
)

// TopErrors groups error entries by type and ranks them by frequency.
// Grouping is stable: for equal counts, the group whose type was seen first
// ranks first. Each group keeps its first-seen message as the sample,
// truncated on a rune boundary.
func TopErrors(entries []domain.LogEntry) domain.TopErrors {
	if len(entries) == 0 {
		return domain.TopErrors{AllClear: true}
	}

	index := make(map[string]int, len(entries))
	groups := make([]domain.ErrorGroup, 0, len(entries))

	for _, e := range entries {
		if i, seen := index[e.Type]; seen {
			groups[i].Count++
			continue
		}
		index[e.Type] = len(groups)
		groups = append(groups, domain.ErrorGroup{
			Type:   e.Type,
			Count:  1,
			Sample: truncateMessage(e.Message),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	if len(groups) > topErrorLimit {
		groups = groups[:topErrorLimit]
	}

	return domain.TopErrors{Groups: groups}
}

func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= sampleMessageRunes {
		return msg
	}
	return string(runes[:sampleMessageRunes-1]) + "…"
}
