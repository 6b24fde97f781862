package insight

import "github.com/ci-tools/cloud-insight/pkg/models/domain"

// BuildRecommendations ranks the analyzer's advisories 1-indexed in their
// original order. An empty or absent list yields the all-optimal marker
// instead of an empty sequence.
func BuildRecommendations(items []string) domain.Recommendations {
	if len(items) == 0 {
		return domain.Recommendations{AllOptimal: true}
	}

	ranked := make([]domain.Recommendation, 0, len(items))
	for i, text := range items {
		ranked = append(ranked, domain.Recommendation{Rank: i + 1, Text: text})
	}
	return domain.Recommendations{Items: ranked}
}
