package stats

import "github.com/cricsight/cricsight/internal/dataset"

// MatchesPerVenue ranks venues by matches hosted.
func MatchesPerVenue(ds *dataset.Dataset, n int) []Group {
	counts := make(map[string]int)
	for i := range ds.Matches {
		counts[ds.Matches[i].Venue]++
	}
	return topN(countGroups(counts), n)
}

// PlayerOfMatchLeaders ranks players by Man of the Match awards.
func PlayerOfMatchLeaders(ds *dataset.Dataset, n int) []Group {
	counts := make(map[string]int)
	for i := range ds.Matches {
		counts[ds.Matches[i].PlayerOfMatch]++
	}
	return topN(countGroups(counts), n)
}
