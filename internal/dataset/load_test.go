package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cricsight/cricsight/internal/logging"
)

const matchesCSV = `ID,City,Date,Season,Team1,Team2,Venue,TossWinner,TossDecision,SuperOver,WinningTeam,WonBy,Margin,Player_of_Match,Umpire1,Umpire2
1,Bangalore,2008-04-18,2008,Royal Challengers Bangalore,Kolkata Knight Riders,M Chinnaswamy Stadium,Royal Challengers Bangalore,field,N,Kolkata Knight Riders,Runs,140,BB McCullum,Asad Rauf,RE Koertzen
2,Chandigarh,2008-04-19,2008,Kings XI Punjab,Chennai Super Kings,PCA Stadium,Chennai Super Kings,bat,N,Chennai Super Kings,Runs,33,MEK Hussey,MR Benson,SL Shastri
3,Delhi,2009-04-19,2008/09,Delhi Daredevils,Rajasthan Royals,Feroz Shah Kotla,Rajasthan Royals,bat,N,Delhi Daredevils,Wickets,9,MF Maharoof,Aleem Dar,GA Pratapkumar
4,Mumbai,2009-04-25,2009,Mumbai Indians,Royal Challengers Bangalore,Wankhede Stadium,Mumbai Indians,bat,N,,NoResults,0,,BR Doctrove,DJ Harper
`

const deliveriesCSV = `ID,innings,overs,ballnumber,batter,bowler,non-striker,extra_type,batsman_run,extras_run,total_run,non_boundary,isWicketDelivery,player_out,kind,fielders_involved,BattingTeam
1,1,0,1,SC Ganguly,P Kumar,BB McCullum,legbyes,0,1,1,0,0,NA,NA,NA,Kolkata Knight Riders
1,1,0,2,BB McCullum,P Kumar,SC Ganguly,NA,4,0,4,0,0,NA,NA,NA,Kolkata Knight Riders
1,1,0,3,BB McCullum,P Kumar,SC Ganguly,wides,0,1,1,0,0,NA,NA,NA,Kolkata Knight Riders
1,2,5,4,R Dravid,AB Dinda,W Jaffer,NA,0,0,0,0,1,R Dravid,bowled,NA,Royal Challengers Bangalore
2,1,19,6,MS Dhoni,IK Pathan,SK Raina,NA,6,0,6,0,0,NA,NA,NA,Chennai Super Kings
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	mp := filepath.Join(dir, "matches.csv")
	dp := filepath.Join(dir, "deliveries.csv")
	if err := os.WriteFile(mp, []byte(matchesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dp, []byte(deliveriesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return mp, dp
}

func TestLoad(t *testing.T) {
	mp, dp := writeFixtures(t)

	ds, err := Load(mp, dp, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ds.Matches) != 4 {
		t.Errorf("expected 4 matches, got %d", len(ds.Matches))
	}
	if len(ds.Deliveries) != 5 {
		t.Errorf("expected 5 deliveries, got %d", len(ds.Deliveries))
	}
	if ds.SkippedMatches != 0 || ds.SkippedDeliveries != 0 {
		t.Errorf("expected no skipped rows, got %d/%d", ds.SkippedMatches, ds.SkippedDeliveries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, dp := writeFixtures(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), dp, logging.Discard())
	if err == nil {
		t.Fatal("expected error for missing matches file")
	}
}

func TestReadMatchesFields(t *testing.T) {
	matches, skipped, err := ReadMatches(strings.NewReader(matchesCSV), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}

	m := matches[0]
	if m.ID != 1 {
		t.Errorf("expected id 1, got %d", m.ID)
	}
	if m.TossWinner != "Royal Challengers Bangalore" {
		t.Errorf("unexpected toss winner: %s", m.TossWinner)
	}
	if m.TossDecision != "field" {
		t.Errorf("expected toss decision field, got %s", m.TossDecision)
	}
	if m.WonBy != "runs" || m.Margin != 140 {
		t.Errorf("expected runs/140, got %s/%d", m.WonBy, m.Margin)
	}
	if m.Date.Year() != 2008 {
		t.Errorf("expected date year 2008, got %d", m.Date.Year())
	}
}

func TestReadMatchesSplitSeasonLabel(t *testing.T) {
	matches, _, err := ReadMatches(strings.NewReader(matchesCSV), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "2008/09" with a 2009 date groups under 2009.
	if matches[2].Season != "2009" {
		t.Errorf("expected season 2009, got %s", matches[2].Season)
	}
}

func TestReadMatchesNoResult(t *testing.T) {
	matches, _, err := ReadMatches(strings.NewReader(matchesCSV), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matches[3].NoResult() {
		t.Error("expected match 4 to be a no result")
	}
	if matches[1].NoResult() {
		t.Error("match 2 has a winner, should not be a no result")
	}
}

func TestReadMatchesLegacyMarginColumns(t *testing.T) {
	// The 2008-2017 export carries a "result" column (normal/tie/no result)
	// next to the split margin columns.
	legacy := `match_id,season,date,team1,team2,toss_winner,toss_decision,result,winner,win_by_runs,win_by_wickets,player_of_match,venue
10,2017,2017-04-05,Sunrisers Hyderabad,Royal Challengers Bangalore,Royal Challengers Bangalore,field,normal,Sunrisers Hyderabad,35,0,Yuvraj Singh,Rajiv Gandhi Stadium
11,2017,2017-04-06,Mumbai Indians,Rising Pune Supergiant,Rising Pune Supergiant,field,normal,Rising Pune Supergiant,0,7,SPD Smith,Maharashtra Cricket Association Stadium
12,2017,2017-04-07,Gujarat Lions,Kings XI Punjab,Kings XI Punjab,field,tie,Kings XI Punjab,0,0,AR Patel,Saurashtra Cricket Association Stadium
13,2017,2017-04-08,Delhi Daredevils,Kolkata Knight Riders,Delhi Daredevils,bat,no result,,0,0,,Feroz Shah Kotla
`
	matches, _, err := ReadMatches(strings.NewReader(legacy), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches[0].WonBy != "runs" || matches[0].Margin != 35 {
		t.Errorf("expected runs/35, got %s/%d", matches[0].WonBy, matches[0].Margin)
	}
	if matches[1].WonBy != "wickets" || matches[1].Margin != 7 {
		t.Errorf("expected wickets/7, got %s/%d", matches[1].WonBy, matches[1].Margin)
	}
	if matches[2].WonBy != "superover" {
		t.Errorf("expected tie to map to superover, got %s", matches[2].WonBy)
	}
	if !matches[3].NoResult() {
		t.Error("expected abandoned legacy match to be a no result")
	}
}

func TestReadMatchesMissingIDColumn(t *testing.T) {
	_, _, err := ReadMatches(strings.NewReader("season,date\n2008,2008-04-18\n"), logging.Discard())
	if err == nil {
		t.Fatal("expected error for missing id column")
	}
}

func TestReadMatchesSkipsMalformedRows(t *testing.T) {
	bad := `ID,Season,Date,Team1,Team2
1,2008,2008-04-18,A,B
notanumber,2008,2008-04-19,C,D
2,2008,2008-04-20,E,F
`
	matches, skipped, err := ReadMatches(strings.NewReader(bad), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}
}

func TestReadDeliveriesFields(t *testing.T) {
	deliveries, skipped, err := ReadDeliveries(strings.NewReader(deliveriesCSV), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}

	d := deliveries[0]
	if d.MatchID != 1 || d.Innings != 1 || d.Over != 0 || d.Ball != 1 {
		t.Errorf("unexpected position: %+v", d)
	}
	if d.ExtraType != "legbyes" || d.TotalRuns != 1 {
		t.Errorf("expected legbyes/1, got %s/%d", d.ExtraType, d.TotalRuns)
	}

	wicket := deliveries[3]
	if !wicket.IsWicket || wicket.PlayerOut != "R Dravid" || wicket.Dismissal != "bowled" {
		t.Errorf("unexpected wicket delivery: %+v", wicket)
	}
}

func TestReadDeliveriesLegacyHeaders(t *testing.T) {
	legacy := `match_id,inning,over,ball,batting_team,bowling_team,batsman,non_striker,bowler,batsman_runs,extra_runs,total_runs,player_dismissed,dismissal_kind,fielder
1,1,1,1,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,0,0,0,,,
1,1,1,2,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,4,0,4,,,
`
	deliveries, _, err := ReadDeliveries(strings.NewReader(legacy), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Legacy "over" counts from 1; normalized to 0-based.
	if deliveries[0].Over != 0 {
		t.Errorf("expected over 0 after normalization, got %d", deliveries[0].Over)
	}
	if deliveries[0].Batter != "DA Warner" {
		t.Errorf("expected batsman alias to map to Batter, got %s", deliveries[0].Batter)
	}
	if deliveries[0].BowlingTeam != "Royal Challengers Bangalore" {
		t.Errorf("expected bowling team from column, got %s", deliveries[0].BowlingTeam)
	}
	if deliveries[1].IsWicket {
		t.Error("expected no wicket when player_dismissed is empty")
	}
}

func TestReadDeliveriesLegacyExtraColumns(t *testing.T) {
	// The 2008-2017 export has no extras-type column; the type is implied
	// by the per-type run columns.
	legacy := `match_id,inning,over,ball,batting_team,bowling_team,batsman,non_striker,bowler,wide_runs,bye_runs,legbye_runs,noball_runs,penalty_runs,batsman_runs,extra_runs,total_runs,player_dismissed,dismissal_kind,fielder
1,1,1,1,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,1,0,0,0,0,0,1,1,,,
1,1,1,2,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,0,0,2,0,0,0,2,2,,,
1,1,1,3,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,0,0,0,1,0,0,1,1,,,
1,1,1,4,Sunrisers Hyderabad,Royal Challengers Bangalore,DA Warner,S Dhawan,TS Mills,0,0,0,0,0,4,0,4,,,
`
	deliveries, _, err := ReadDeliveries(strings.NewReader(legacy), logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wide := deliveries[0]
	if wide.ExtraType != "wides" {
		t.Errorf("expected wides from wide_runs column, got %q", wide.ExtraType)
	}
	if !wide.Wide() || wide.Legal() {
		t.Errorf("wide should not count as a ball faced or a legal ball: %+v", wide)
	}

	legbye := deliveries[1]
	if legbye.ExtraType != "legbyes" {
		t.Errorf("expected legbyes from legbye_runs column, got %q", legbye.ExtraType)
	}
	if legbye.BowlerRuns() != 0 {
		t.Errorf("leg byes charged to the bowler: %d", legbye.BowlerRuns())
	}

	noball := deliveries[2]
	if noball.ExtraType != "noballs" {
		t.Errorf("expected noballs from noball_runs column, got %q", noball.ExtraType)
	}
	if noball.Legal() {
		t.Error("no-ball should not count as a legal ball")
	}

	plain := deliveries[3]
	if plain.ExtraType != "" {
		t.Errorf("expected no extras type on a plain hit, got %q", plain.ExtraType)
	}
	if !plain.Legal() || plain.BowlerRuns() != 4 {
		t.Errorf("plain delivery misaccounted: legal=%v bowler runs=%d", plain.Legal(), plain.BowlerRuns())
	}
}

func TestLoadDerivesBowlingTeam(t *testing.T) {
	mp, dp := writeFixtures(t)

	ds, err := Load(mp, dp, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Match 1: KKR batting, so RCB bowls.
	d := ds.Deliveries[0]
	if d.BowlingTeam != "Royal Challengers Bangalore" {
		t.Errorf("expected derived bowling team RCB, got %s", d.BowlingTeam)
	}
}
