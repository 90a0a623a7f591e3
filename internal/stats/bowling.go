package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// BowlerStats accumulates one bowler's career numbers across the dataset.
type BowlerStats struct {
	Name         string  `json:"name"`
	Wickets      int     `json:"wickets"`
	RunsConceded int     `json:"runs_conceded"`
	LegalBalls   int     `json:"legal_balls"`
	DotBalls     int     `json:"dot_balls"`
	Economy      float64 `json:"economy"`
}

// bowlerTable folds the delivery table into per-bowler totals. Run outs and
// the other non-bowler dismissals are not credited; byes and leg byes are
// not charged.
func bowlerTable(ds *dataset.Dataset) map[string]*BowlerStats {
	table := make(map[string]*BowlerStats)

	for i := range ds.Deliveries {
		d := &ds.Deliveries[i]
		if d.Bowler == "" {
			continue
		}

		bs := table[d.Bowler]
		if bs == nil {
			bs = &BowlerStats{Name: d.Bowler}
			table[d.Bowler] = bs
		}

		bs.RunsConceded += d.BowlerRuns()
		if d.Legal() {
			bs.LegalBalls++
			if d.TotalRuns == 0 {
				bs.DotBalls++
			}
		}
		if d.BowlerWicket() {
			bs.Wickets++
		}
	}

	for _, bs := range table {
		if bs.LegalBalls > 0 {
			bs.Economy = float64(bs.RunsConceded) / float64(bs.LegalBalls) * 6
		}
	}
	return table
}

// TopWicketTakers ranks bowlers by wickets credited to them.
func TopWicketTakers(ds *dataset.Dataset, n int) []BowlerStats {
	return rankBowlers(bowlerTable(ds), n, 0, func(a, b *BowlerStats) bool {
		if a.Wickets != b.Wickets {
			return a.Wickets > b.Wickets
		}
		return a.Name < b.Name
	})
}

// EconomyRates ranks qualified bowlers by economy (runs per over), best
// first. Bowlers with fewer than minBalls legal balls are excluded.
func EconomyRates(ds *dataset.Dataset, n, minBalls int) []BowlerStats {
	return rankBowlers(bowlerTable(ds), n, minBalls, func(a, b *BowlerStats) bool {
		if a.Economy != b.Economy {
			return a.Economy < b.Economy
		}
		return a.Name < b.Name
	})
}

// MostDotBalls ranks bowlers by dot balls delivered.
func MostDotBalls(ds *dataset.Dataset, n int) []BowlerStats {
	return rankBowlers(bowlerTable(ds), n, 0, func(a, b *BowlerStats) bool {
		if a.DotBalls != b.DotBalls {
			return a.DotBalls > b.DotBalls
		}
		return a.Name < b.Name
	})
}

func rankBowlers(table map[string]*BowlerStats, n, minBalls int, less func(a, b *BowlerStats) bool) []BowlerStats {
	ranked := make([]BowlerStats, 0, len(table))
	for _, bs := range table {
		if bs.LegalBalls < minBalls {
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
