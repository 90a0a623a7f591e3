package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Load reads both CSV files and returns the linked dataset. The two common
// public IPL header spellings are accepted (e.g. "TossWinner" and
// "toss_winner", "ballnumber" and "ball"). Malformed rows are skipped and
// counted; file-level problems are returned as errors.
func Load(matchesPath, deliveriesPath string, logger *slog.Logger) (*Dataset, error) {
	mf, err := os.Open(matchesPath)
	if err != nil {
		return nil, fmt.Errorf("opening matches file: %w", err)
	}
	defer mf.Close()

	matches, skippedM, err := ReadMatches(mf, logger)
	if err != nil {
		return nil, fmt.Errorf("reading matches: %w", err)
	}

	df, err := os.Open(deliveriesPath)
	if err != nil {
		return nil, fmt.Errorf("opening deliveries file: %w", err)
	}
	defer df.Close()

	deliveries, skippedD, err := ReadDeliveries(df, logger)
	if err != nil {
		return nil, fmt.Errorf("reading deliveries: %w", err)
	}

	ds := New(matches, deliveries)
	ds.SkippedMatches = skippedM
	ds.SkippedDeliveries = skippedD

	logger.Info("dataset loaded",
		"matches", len(matches),
		"deliveries", len(deliveries),
		"skipped_matches", skippedM,
		"skipped_deliveries", skippedD)

	return ds, nil
}

// fillBowlingTeams derives the bowling side from the match teams when the
// delivery table does not carry it.
func (ds *Dataset) fillBowlingTeams() {
	for i := range ds.Deliveries {
		d := &ds.Deliveries[i]
		if d.BowlingTeam != "" {
			continue
		}
		m := ds.matchByID[d.MatchID]
		if m == nil {
			continue
		}
		if d.BattingTeam == m.Team1 {
			d.BowlingTeam = m.Team2
		} else {
			d.BowlingTeam = m.Team1
		}
	}
}

// columns maps normalized header names to their index in the row.
type columns map[string]int

func (c columns) str(row []string, names ...string) string {
	for _, n := range names {
		if i, ok := c[n]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

func (c columns) num(row []string, names ...string) (int, bool) {
	s := c.str(row, names...)
	if s == "" || s == "NA" {
		return 0, false
	}
	// Some exports carry integer columns as floats ("1.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func (c columns) has(names ...string) bool {
	for _, n := range names {
		if _, ok := c[n]; ok {
			return true
		}
	}
	return false
}

func readHeader(r *csv.Reader) (columns, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(columns, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}
	return cols, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

var dateFormats = []string{"2006-01-02", "02-01-2006", "2006/01/02", "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ReadMatches parses the match-level table.
func ReadMatches(r io.Reader, logger *slog.Logger) ([]Match, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	cols, err := readHeader(cr)
	if err != nil {
		return nil, 0, err
	}
	if !cols.has("id", "match_id") {
		return nil, 0, fmt.Errorf("matches table has no match identifier column")
	}

	var matches []Match
	skipped := 0
	line := 1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped++
			logger.Debug("skipping malformed match row", "line", line, "err", err)
			continue
		}

		id, ok := cols.num(row, "id", "match_id")
		if !ok {
			skipped++
			logger.Debug("skipping match row without id", "line", line)
			continue
		}

		m := Match{
			ID:            id,
			City:          cols.str(row, "city"),
			Venue:         cols.str(row, "venue"),
			Team1:         cols.str(row, "team1"),
			Team2:         cols.str(row, "team2"),
			TossWinner:    cols.str(row, "tosswinner", "toss_winner"),
			TossDecision:  normalizeDecision(cols.str(row, "tossdecision", "toss_decision")),
			WinningTeam:   cols.str(row, "winningteam", "winner", "winning_team"),
			PlayerOfMatch: cols.str(row, "player_of_match", "playerofmatch"),
			Umpire1:       cols.str(row, "umpire1"),
			Umpire2:       cols.str(row, "umpire2"),
		}

		if t, ok := parseDate(cols.str(row, "date")); ok {
			m.Date = t
		}
		m.Season = normalizeSeason(cols.str(row, "season"), m.Date)
		m.SuperOver = parseBool(cols.str(row, "superover", "super_over"))

		m.WonBy = normalizeWonBy(cols.str(row, "wonby", "won_by", "result"))
		m.Margin, _ = cols.num(row, "margin", "result_margin")

		// Older exports split the margin into two columns.
		if m.WonBy == "" {
			if runs, ok := cols.num(row, "win_by_runs"); ok && runs > 0 {
				m.WonBy, m.Margin = "runs", runs
			} else if wkts, ok := cols.num(row, "win_by_wickets"); ok && wkts > 0 {
				m.WonBy, m.Margin = "wickets", wkts
			}
		}
		if m.WinningTeam == "" {
			m.WonBy = "noresult"
		}

		matches = append(matches, m)
	}

	return matches, skipped, nil
}

// ReadDeliveries parses the ball-by-ball table.
func ReadDeliveries(r io.Reader, logger *slog.Logger) ([]Delivery, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	cols, err := readHeader(cr)
	if err != nil {
		return nil, 0, err
	}
	if !cols.has("id", "match_id") {
		return nil, 0, fmt.Errorf("deliveries table has no match identifier column")
	}

	// "overs" counts from 0, the older "over" column from 1.
	oneBasedOvers := !cols.has("overs") && cols.has("over")

	// Older exports have no extras-type column; the type is implied by
	// which per-type run column is nonzero.
	hasExtraType := cols.has("extra_type", "extras_type")

	var deliveries []Delivery
	skipped := 0
	line := 1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped++
			logger.Debug("skipping malformed delivery row", "line", line, "err", err)
			continue
		}

		id, ok := cols.num(row, "id", "match_id")
		if !ok {
			skipped++
			logger.Debug("skipping delivery row without match id", "line", line)
			continue
		}

		innings, ok := cols.num(row, "innings", "inning")
		if !ok {
			skipped++
			logger.Debug("skipping delivery row without innings", "line", line)
			continue
		}

		over, _ := cols.num(row, "overs", "over")
		if oneBasedOvers && over > 0 {
			over--
		}
		ball, _ := cols.num(row, "ballnumber", "ball")

		d := Delivery{
			MatchID:     id,
			Innings:     innings,
			Over:        over,
			Ball:        ball,
			BattingTeam: cols.str(row, "battingteam", "batting_team"),
			BowlingTeam: cols.str(row, "bowlingteam", "bowling_team"),
			Batter:      cols.str(row, "batter", "batsman"),
			NonStriker:  cols.str(row, "non_striker", "nonstriker"),
			Bowler:      cols.str(row, "bowler"),
			ExtraType:   normalizeExtraType(cols.str(row, "extra_type", "extras_type")),
			PlayerOut:   cols.str(row, "player_out", "player_dismissed"),
			Dismissal:   strings.ToLower(cols.str(row, "kind", "dismissal_kind")),
			Fielders:    cols.str(row, "fielders_involved", "fielder"),
		}

		d.BatterRuns, _ = cols.num(row, "batsman_run", "batsman_runs")
		d.ExtraRuns, _ = cols.num(row, "extras_run", "extra_runs")
		d.TotalRuns, _ = cols.num(row, "total_run", "total_runs")

		if !hasExtraType {
			d.ExtraType = deriveExtraType(cols, row)
		}

		if w, ok := cols.num(row, "iswicketdelivery", "is_wicket"); ok {
			d.IsWicket = w != 0
		} else {
			d.IsWicket = d.PlayerOut != ""
		}

		deliveries = append(deliveries, d)
	}

	return deliveries, skipped, nil
}

// normalizeSeason replaces split-year labels ("2007/08") with the calendar
// year of the match date, so seasons group consistently across exports.
func normalizeSeason(s string, date time.Time) string {
	s = strings.TrimSpace(s)
	if (s == "" || strings.Contains(s, "/")) && !date.IsZero() {
		return strconv.Itoa(date.Year())
	}
	return s
}

func normalizeDecision(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bat":
		return "bat"
	case "field", "bowl":
		return "field"
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeWonBy(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	switch s {
	case "runs", "wickets":
		return s
	case "superover", "tie":
		return "superover"
	case "noresults", "noresult":
		return "noresult"
	}
	// Older exports carry a "result" column valued "normal" for decided
	// matches; the margin lives in win_by_runs/win_by_wickets instead.
	// Unknown values map to empty so the split-column fallback fires.
	return ""
}

// deriveExtraType reconstructs the extras label from the per-type run
// columns of older exports. A delivery carries at most one extras type.
func deriveExtraType(cols columns, row []string) string {
	kinds := []struct{ col, typ string }{
		{"wide_runs", "wides"},
		{"noball_runs", "noballs"},
		{"bye_runs", "byes"},
		{"legbye_runs", "legbyes"},
		{"penalty_runs", "penalty"},
	}
	for _, k := range kinds {
		if n, ok := cols.num(row, k.col); ok && n > 0 {
			return k.typ
		}
	}
	return ""
}

func normalizeExtraType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "na" {
		return ""
	}
	return s
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
