package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// BatterStats accumulates one batter's career numbers across the dataset.
type BatterStats struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	BallsFaced int     `json:"balls_faced"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	Innings    int     `json:"innings"`
	StrikeRate float64 `json:"strike_rate"`
}

// batterTable folds the delivery table into per-batter totals. Wides do not
// count as balls faced; extras never count as the batter's runs.
func batterTable(ds *dataset.Dataset) map[string]*BatterStats {
	table := make(map[string]*BatterStats)
	seen := make(map[int]map[string]bool) // matchID → batters, for innings counts

	for i := range ds.Deliveries {
		d := &ds.Deliveries[i]
		if d.Batter == "" {
			continue
		}

		bs := table[d.Batter]
		if bs == nil {
			bs = &BatterStats{Name: d.Batter}
			table[d.Batter] = bs
		}

		bs.Runs += d.BatterRuns
		if !d.Wide() {
			bs.BallsFaced++
		}
		if d.BatterRuns == 4 {
			bs.Fours++
		}
		if d.BatterRuns == 6 {
			bs.Sixes++
		}

		if seen[d.MatchID] == nil {
			seen[d.MatchID] = make(map[string]bool)
		}
		if !seen[d.MatchID][d.Batter] {
			seen[d.MatchID][d.Batter] = true
			bs.Innings++
		}
	}

	for _, bs := range table {
		if bs.BallsFaced > 0 {
			bs.StrikeRate = float64(bs.Runs) / float64(bs.BallsFaced) * 100
		}
	}
	return table
}

// TopRunScorers ranks batters by total runs scored.
func TopRunScorers(ds *dataset.Dataset, n int) []BatterStats {
	return rankBatters(batterTable(ds), n, 0, func(a, b *BatterStats) bool {
		if a.Runs != b.Runs {
			return a.Runs > b.Runs
		}
		return a.Name < b.Name
	})
}

// StrikeRates ranks qualified batters by strike rate (runs per 100 balls).
// Batters with fewer than minBalls balls faced are excluded.
func StrikeRates(ds *dataset.Dataset, n, minBalls int) []BatterStats {
	return rankBatters(batterTable(ds), n, minBalls, func(a, b *BatterStats) bool {
		if a.StrikeRate != b.StrikeRate {
			return a.StrikeRate > b.StrikeRate
		}
		return a.Name < b.Name
	})
}

// MostSixes ranks batters by sixes hit.
func MostSixes(ds *dataset.Dataset, n int) []BatterStats {
	return rankBatters(batterTable(ds), n, 0, func(a, b *BatterStats) bool {
		if a.Sixes != b.Sixes {
			return a.Sixes > b.Sixes
		}
		return a.Name < b.Name
	})
}

// MostFours ranks batters by fours hit.
func MostFours(ds *dataset.Dataset, n int) []BatterStats {
	return rankBatters(batterTable(ds), n, 0, func(a, b *BatterStats) bool {
		if a.Fours != b.Fours {
			return a.Fours > b.Fours
		}
		return a.Name < b.Name
	})
}

func rankBatters(table map[string]*BatterStats, n, minBalls int, less func(a, b *BatterStats) bool) []BatterStats {
	ranked := make([]BatterStats, 0, len(table))
	for _, bs := range table {
		if bs.BallsFaced < minBalls {
			continue
		}
		ranked = append(ranked, *bs)
	}
	sort.Slice(ranked, func(i, j int) bool { return less(&ranked[i], &ranked[j]) })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TeamInnings is a single team innings total.
type TeamInnings struct {
	MatchID int    `json:"match_id"`
	Season  string `json:"season"`
	Team    string `json:"team"`
	Innings int    `json:"innings"`
	Runs    int    `json:"runs"`
}

// HighestTotals ranks team innings by total runs. Super-over innings are
// excluded.
func HighestTotals(ds *dataset.Dataset, n int) []TeamInnings {
	type key struct {
		match   int
		innings int
	}
	totals := make(map[key]*TeamInnings)

	for i := range ds.Deliveries {
		d := &ds.Deliveries[i]
		if d.Innings > 2 {
			continue
		}
		k := key{d.MatchID, d.Innings}
		ti := totals[k]
		if ti == nil {
			ti = &TeamInnings{
				MatchID: d.MatchID,
				Season:  ds.SeasonOf(d.MatchID),
				Team:    d.BattingTeam,
				Innings: d.Innings,
			}
			totals[k] = ti
		}
		ti.Runs += d.TotalRuns
	}

	ranked := make([]TeamInnings, 0, len(totals))
	for _, ti := range totals {
		ranked = append(ranked, *ti)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Runs != ranked[j].Runs {
			return ranked[i].Runs > ranked[j].Runs
		}
		return ranked[i].MatchID < ranked[j].MatchID
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
