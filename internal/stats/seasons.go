package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// SeasonSummary aggregates one season: how many matches were played, how
// many runs were scored, and the runs-per-match rate.
type SeasonSummary struct {
	Season       string  `json:"season"`
	Matches      int     `json:"matches"`
	TotalRuns    int     `json:"total_runs"`
	RunsPerMatch float64 `json:"runs_per_match"`
}

// SeasonSummaries returns per-season match counts, total runs, and runs per
// match, in chronological order.
func SeasonSummaries(ds *dataset.Dataset) []SeasonSummary {
	matches := make(map[string]int)
	for i := range ds.Matches {
		matches[ds.Matches[i].Season]++
	}

	runs := make(map[string]int)
	for i := range ds.Deliveries {
		season := ds.SeasonOf(ds.Deliveries[i].MatchID)
		if season == "" {
			continue
		}
		runs[season] += ds.Deliveries[i].TotalRuns
	}

	summaries := make([]SeasonSummary, 0, len(matches))
	for season, count := range matches {
		s := SeasonSummary{
			Season:    season,
			Matches:   count,
			TotalRuns: runs[season],
		}
		if count > 0 {
			s.RunsPerMatch = float64(s.TotalRuns) / float64(count)
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Season < summaries[j].Season
	})
	return summaries
}
