package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// Innings phases by 0-based over index: powerplay 0-5, middle 6-14,
// death 15-19.
const (
	PhasePowerplay = "powerplay"
	PhaseMiddle    = "middle"
	PhaseDeath     = "death"
)

// PhaseOf classifies a 0-based over index.
func PhaseOf(over int) string {
	switch {
	case over < 6:
		return PhasePowerplay
	case over < 15:
		return PhaseMiddle
	default:
		return PhaseDeath
	}
}

// PhaseRates is one team's scoring rate (runs per over) in each innings phase.
type PhaseRates struct {
	Team           string  `json:"team"`
	PowerplayRate  float64 `json:"powerplay_rate"`
	MiddleRate     float64 `json:"middle_rate"`
	DeathRate      float64 `json:"death_rate"`
	PowerplayRuns  int     `json:"powerplay_runs"`
	MiddleRuns     int     `json:"middle_runs"`
	DeathRuns      int     `json:"death_runs"`
	PowerplayBalls int     `json:"powerplay_balls"`
	MiddleBalls    int     `json:"middle_balls"`
	DeathBalls     int     `json:"death_balls"`
}

// PhaseRunRates computes each team's run rate per phase across the first
// two innings of every match. Super overs are excluded; rates are per over
// of legal deliveries.
func PhaseRunRates(ds *dataset.Dataset) []PhaseRates {
	byTeam := make(map[string]*PhaseRates)

	for i := range ds.Deliveries {
		d := &ds.Deliveries[i]
		if d.Innings > 2 || d.BattingTeam == "" {
			continue
		}

		pr := byTeam[d.BattingTeam]
		if pr == nil {
			pr = &PhaseRates{Team: d.BattingTeam}
			byTeam[d.BattingTeam] = pr
		}

		switch PhaseOf(d.Over) {
		case PhasePowerplay:
			pr.PowerplayRuns += d.TotalRuns
			if d.Legal() {
				pr.PowerplayBalls++
			}
		case PhaseMiddle:
			pr.MiddleRuns += d.TotalRuns
			if d.Legal() {
				pr.MiddleBalls++
			}
		case PhaseDeath:
			pr.DeathRuns += d.TotalRuns
			if d.Legal() {
				pr.DeathBalls++
			}
		}
	}

	rates := make([]PhaseRates, 0, len(byTeam))
	for _, pr := range byTeam {
		if pr.PowerplayBalls > 0 {
			pr.PowerplayRate = float64(pr.PowerplayRuns) / float64(pr.PowerplayBalls) * 6
		}
		if pr.MiddleBalls > 0 {
			pr.MiddleRate = float64(pr.MiddleRuns) / float64(pr.MiddleBalls) * 6
		}
		if pr.DeathBalls > 0 {
			pr.DeathRate = float64(pr.DeathRuns) / float64(pr.DeathBalls) * 6
		}
		rates = append(rates, *pr)
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Team < rates[j].Team
	})
	return rates
}
