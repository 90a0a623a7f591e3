package stats

import (
	"sort"

	"github.com/cricsight/cricsight/internal/dataset"
)

// TeamRecord is one team's overall win/loss ledger. No-result matches count
// toward Played but are excluded from the win-rate denominator.
type TeamRecord struct {
	Team      string  `json:"team"`
	Played    int     `json:"played"`
	Won       int     `json:"won"`
	NoResults int     `json:"no_results"`
	WinPct    float64 `json:"win_pct"`
}

// TeamRecords ranks all teams by matches won.
func TeamRecords(ds *dataset.Dataset) []TeamRecord {
	byTeam := make(map[string]*TeamRecord)
	get := func(team string) *TeamRecord {
		if team == "" {
			return nil
		}
		tr := byTeam[team]
		if tr == nil {
			tr = &TeamRecord{Team: team}
			byTeam[team] = tr
		}
		return tr
	}

	for i := range ds.Matches {
		m := &ds.Matches[i]
		t1, t2 := get(m.Team1), get(m.Team2)
		for _, tr := range []*TeamRecord{t1, t2} {
			if tr == nil {
				continue
			}
			tr.Played++
			if m.NoResult() {
				tr.NoResults++
			}
		}
		if !m.NoResult() {
			if w := get(m.WinningTeam); w != nil {
				w.Won++
			}
		}
	}

	records := make([]TeamRecord, 0, len(byTeam))
	for _, tr := range byTeam {
		if decided := tr.Played - tr.NoResults; decided > 0 {
			tr.WinPct = float64(tr.Won) / float64(decided) * 100
		}
		records = append(records, *tr)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Won != records[j].Won {
			return records[i].Won > records[j].Won
		}
		return records[i].Team < records[j].Team
	})
	return records
}

// BiggestWins returns the largest victories by run margin and by wicket
// margin, each limited to n.
func BiggestWins(ds *dataset.Dataset, n int) (byRuns, byWickets []dataset.Match) {
	for i := range ds.Matches {
		m := ds.Matches[i]
		switch m.WonBy {
		case "runs":
			byRuns = append(byRuns, m)
		case "wickets":
			byWickets = append(byWickets, m)
		}
	}

	byMargin := func(ms []dataset.Match) {
		sort.Slice(ms, func(i, j int) bool {
			if ms[i].Margin != ms[j].Margin {
				return ms[i].Margin > ms[j].Margin
			}
			return ms[i].ID < ms[j].ID
		})
	}
	byMargin(byRuns)
	byMargin(byWickets)

	if n > 0 && len(byRuns) > n {
		byRuns = byRuns[:n]
	}
	if n > 0 && len(byWickets) > n {
		byWickets = byWickets[:n]
	}
	return byRuns, byWickets
}

// HeadToHead is the results split between two named teams.
type HeadToHead struct {
	TeamA     string `json:"team_a"`
	TeamB     string `json:"team_b"`
	Played    int    `json:"played"`
	WinsA     int    `json:"wins_a"`
	WinsB     int    `json:"wins_b"`
	NoResults int    `json:"no_results"`
}

// HeadToHeadRecord summarizes every meeting between two teams.
func HeadToHeadRecord(ds *dataset.Dataset, teamA, teamB string) HeadToHead {
	h := HeadToHead{TeamA: teamA, TeamB: teamB}
	for i := range ds.Matches {
		m := &ds.Matches[i]
		pair := (m.Team1 == teamA && m.Team2 == teamB) || (m.Team1 == teamB && m.Team2 == teamA)
		if !pair {
			continue
		}
		h.Played++
		switch {
		case m.NoResult():
			h.NoResults++
		case m.WinningTeam == teamA:
			h.WinsA++
		case m.WinningTeam == teamB:
			h.WinsB++
		}
	}
	return h
}
