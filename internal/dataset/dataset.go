package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Match is one match-level record.
type Match struct {
	ID            int
	Season        string
	Date          time.Time
	City          string
	Venue         string
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string // bat or field
	SuperOver     bool
	WinningTeam   string // empty for no result
	WonBy         string // runs, wickets, superover, noresult
	Margin        int
	PlayerOfMatch string
	Umpire1       string
	Umpire2       string
}

// NoResult reports whether the match produced no winner.
func (m Match) NoResult() bool {
	return m.WinningTeam == "" || m.WonBy == "noresult"
}

// Delivery is one ball-level record.
type Delivery struct {
	MatchID     int
	Innings     int
	Over        int // 0-based
	Ball        int
	BattingTeam string
	BowlingTeam string
	Batter      string
	NonStriker  string
	Bowler      string
	BatterRuns  int
	ExtraRuns   int
	TotalRuns   int
	ExtraType   string // wides, noballs, byes, legbyes, penalty or empty
	IsWicket    bool
	PlayerOut   string
	Dismissal   string // caught, bowled, run out, ...
	Fielders    string
}

// Wide reports whether the delivery was a wide (does not count as a ball faced).
func (d Delivery) Wide() bool {
	return d.ExtraType == "wides"
}

// Legal reports whether the delivery counts toward the over (not a wide or no-ball).
func (d Delivery) Legal() bool {
	return d.ExtraType != "wides" && d.ExtraType != "noballs"
}

// BowlerWicket reports whether the dismissal is credited to the bowler.
func (d Delivery) BowlerWicket() bool {
	if !d.IsWicket {
		return false
	}
	switch d.Dismissal {
	case "run out", "retired hurt", "retired out", "obstructing the field":
		return false
	}
	return true
}

// BowlerRuns returns the runs charged to the bowler for this delivery.
// Byes, leg byes and penalty runs are not the bowler's.
func (d Delivery) BowlerRuns() int {
	switch d.ExtraType {
	case "byes", "legbyes", "penalty":
		return d.TotalRuns - d.ExtraRuns
	}
	return d.TotalRuns
}

// Dataset holds both loaded tables plus derived lookup indexes.
// It is immutable after Load returns.
type Dataset struct {
	Matches    []Match
	Deliveries []Delivery

	// SkippedMatches and SkippedDeliveries count malformed rows dropped
	// during load.
	SkippedMatches    int
	SkippedDeliveries int

	matchByID map[int]*Match
	seasons   []string
	teams     []string
}

// New builds a dataset from already-parsed records, wiring the lookup
// indexes and deriving the bowling side where the delivery table lacks it.
func New(matches []Match, deliveries []Delivery) *Dataset {
	ds := &Dataset{Matches: matches, Deliveries: deliveries}
	ds.buildIndexes()
	ds.fillBowlingTeams()
	return ds
}

// MatchByID returns the match record for an identifier, or nil.
func (ds *Dataset) MatchByID(id int) *Match {
	return ds.matchByID[id]
}

// SeasonOf returns the season of a match identifier, or empty.
func (ds *Dataset) SeasonOf(matchID int) string {
	if m := ds.matchByID[matchID]; m != nil {
		return m.Season
	}
	return ""
}

// Seasons returns all seasons in chronological order.
func (ds *Dataset) Seasons() []string {
	return ds.seasons
}

// Teams returns all team names in alphabetical order.
func (ds *Dataset) Teams() []string {
	return ds.teams
}

// SeasonSlice returns a derived dataset holding only the given season's
// matches and their deliveries. Skip counters are not carried over.
func (ds *Dataset) SeasonSlice(season string) *Dataset {
	var matches []Match
	ids := make(map[int]bool)
	for _, m := range ds.Matches {
		if m.Season == season {
			matches = append(matches, m)
			ids[m.ID] = true
		}
	}

	var deliveries []Delivery
	for _, d := range ds.Deliveries {
		if ids[d.MatchID] {
			deliveries = append(deliveries, d)
		}
	}

	return New(matches, deliveries)
}

// buildIndexes populates the derived lookups. Called once by Load.
func (ds *Dataset) buildIndexes() {
	ds.matchByID = make(map[int]*Match, len(ds.Matches))
	seasonSet := make(map[string]bool)
	teamSet := make(map[string]bool)

	for i := range ds.Matches {
		m := &ds.Matches[i]
		ds.matchByID[m.ID] = m
		seasonSet[m.Season] = true
		teamSet[m.Team1] = true
		teamSet[m.Team2] = true
	}

	for s := range seasonSet {
		ds.seasons = append(ds.seasons, s)
	}
	sort.Strings(ds.seasons)

	for t := range teamSet {
		if t != "" {
			ds.teams = append(ds.teams, t)
		}
	}
	sort.Strings(ds.teams)
}

// Summary returns a human-readable overview of the loaded dataset.
func (ds *Dataset) Summary() string {
	var b strings.Builder

	players := make(map[string]bool)
	for i := range ds.Deliveries {
		players[ds.Deliveries[i].Batter] = true
		players[ds.Deliveries[i].Bowler] = true
	}

	b.WriteString("Dataset summary:\n")
	b.WriteString(fmt.Sprintf("  Matches:    %s\n", humanize.Comma(int64(len(ds.Matches)))))
	b.WriteString(fmt.Sprintf("  Deliveries: %s\n", humanize.Comma(int64(len(ds.Deliveries)))))
	if len(ds.seasons) > 0 {
		b.WriteString(fmt.Sprintf("  Seasons:    %d (%s - %s)\n",
			len(ds.seasons), ds.seasons[0], ds.seasons[len(ds.seasons)-1]))
	}
	b.WriteString(fmt.Sprintf("  Teams:      %d\n", len(ds.teams)))
	b.WriteString(fmt.Sprintf("  Players:    %d\n", len(players)))
	if ds.SkippedMatches > 0 || ds.SkippedDeliveries > 0 {
		b.WriteString(fmt.Sprintf("  Skipped rows: %d match, %d delivery\n",
			ds.SkippedMatches, ds.SkippedDeliveries))
	}
	return b.String()
}
