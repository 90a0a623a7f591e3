package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// TossWinsByTeam ranks teams by tosses won.
func TossWinsByTeam(ds *dataset.Dataset) []Group {
	wins := make(map[string]int)
	for i := range ds.Matches {
		wins[ds.Matches[i].TossWinner]++
	}
	return countGroups(wins)
}

// DecisionSplit is the overall bat/field split of toss decisions.
type DecisionSplit struct {
	Bat      int     `json:"bat"`
	Field    int     `json:"field"`
	BatPct   float64 `json:"bat_pct"`
	FieldPct float64 `json:"field_pct"`
}

// TossDecisionSplit returns the percentage of toss winners electing to bat
// versus field.
func TossDecisionSplit(ds *dataset.Dataset) DecisionSplit {
	var split DecisionSplit
	for i := range ds.Matches {
		switch ds.Matches[i].TossDecision {
		case "bat":
			split.Bat++
		case "field":
			split.Field++
		}
	}
	total := split.Bat + split.Field
	if total > 0 {
		split.BatPct = float64(split.Bat) / float64(total) * 100
		split.FieldPct = float64(split.Field) / float64(total) * 100
	}
	return split
}

// SeasonDecision is the bat/field toss split within one season.
type SeasonDecision struct {
	Season string `json:"season"`
	Bat    int    `json:"bat"`
	Field  int    `json:"field"`
}

// TossDecisionBySeason returns per-season toss decision counts in
// chronological order.
func TossDecisionBySeason(ds *dataset.Dataset) []SeasonDecision {
	bySeason := make(map[string]*SeasonDecision)
	for i := range ds.Matches {
		m := &ds.Matches[i]
		sd := bySeason[m.Season]
		if sd == nil {
			sd = &SeasonDecision{Season: m.Season}
			bySeason[m.Season] = sd
		}
		switch m.TossDecision {
		case "bat":
			sd.Bat++
		case "field":
			sd.Field++
		}
	}

	decisions := make([]SeasonDecision, 0, len(bySeason))
	for _, sd := range bySeason {
		decisions = append(decisions, *sd)
	}
	sort.Slice(decisions, func(i, j int) bool {
		return decisions[i].Season < decisions[j].Season
	})
	return decisions
}

// TossCorrelation measures how often winning the toss preceded winning the
// match. No-result matches are excluded from the denominator.
type TossCorrelation struct {
	BothWon  int     `json:"both_won"`
	TossOnly int     `json:"toss_only"`
	Excluded int     `json:"excluded"`
	BothPct  float64 `json:"both_pct"`
}

// TossMatchCorrelation answers "does winning the toss imply winning the match?".
func TossMatchCorrelation(ds *dataset.Dataset) TossCorrelation {
	var c TossCorrelation
	for i := range ds.Matches {
		m := &ds.Matches[i]
		if m.NoResult() {
			c.Excluded++
			continue
		}
		if m.TossWinner == m.WinningTeam {
			c.BothWon++
		} else {
			c.TossOnly++
		}
	}
	decided := c.BothWon + c.TossOnly
	if decided > 0 {
		c.BothPct = float64(c.BothWon) / float64(decided) * 100
	}
	return c
}
