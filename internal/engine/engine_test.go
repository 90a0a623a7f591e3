package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/logging"
)

func writeCSVs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	matches := `ID,Season,Date,Team1,Team2,Venue,TossWinner,TossDecision,WinningTeam,WonBy,Margin,Player_of_Match
1,2008,2008-04-18,A,B,V1,A,bat,A,Runs,20,p1
`
	deliveries := `ID,innings,overs,ballnumber,batter,bowler,extra_type,batsman_run,extras_run,total_run,isWicketDelivery,player_out,kind,BattingTeam
1,1,0,1,p1,q1,NA,4,0,4,0,NA,NA,A
1,2,0,1,p2,q2,NA,1,0,1,0,NA,NA,B
`
	mp := filepath.Join(dir, "matches.csv")
	dp := filepath.Join(dir, "deliveries.csv")
	if err := os.WriteFile(mp, []byte(matches), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dp, []byte(deliveries), 0o644); err != nil {
		t.Fatal(err)
	}
	return mp, dp
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	mp, dp := writeCSVs(t)
	cfg := &config.Config{
		Version: config.CurrentVersion,
		Data:    config.DataConfig{MatchesPath: mp, DeliveriesPath: dp},
		Thresholds: config.ThresholdConfig{
			MinBallsFaced:  1,
			MinBallsBowled: 1,
			TopN:           10,
		},
	}
	return New(cfg, logging.Discard())
}

func TestDatasetLoadsOnce(t *testing.T) {
	e := testEngine(t)

	ds1, err := e.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ds2, err := e.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds1 != ds2 {
		t.Error("expected the same dataset instance on the second call")
	}
	if len(ds1.Matches) != 1 || len(ds1.Deliveries) != 2 {
		t.Errorf("unexpected dataset size: %d/%d", len(ds1.Matches), len(ds1.Deliveries))
	}
}

func TestDatasetUnconfigured(t *testing.T) {
	e := New(&config.Config{Version: config.CurrentVersion}, logging.Discard())
	if _, err := e.Dataset(); err == nil {
		t.Fatal("expected error without dataset paths")
	}
}

func TestValidate(t *testing.T) {
	e := testEngine(t)

	result, err := e.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "PASS" {
		t.Errorf("expected PASS, got %s", result.Status)
	}
}

func TestReport(t *testing.T) {
	e := testEngine(t)

	r, err := e.Report()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Dataset.Matches != 1 {
		t.Errorf("expected 1 match in report, got %d", r.Dataset.Matches)
	}
	if r.Validation == nil || r.Validation.Status != "PASS" {
		t.Errorf("expected attached validation result, got %+v", r.Validation)
	}
}
