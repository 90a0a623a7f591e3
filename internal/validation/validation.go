// Package validation checks the loaded dataset for the consistency the
// analyses assume: match identifiers link between the two tables, team
// fields are coherent, and winners actually played.
package validation

import (
	"fmt"
	"time"

	"github.com/cricsight/cricsight/internal/dataset"
)

// Result holds the outcome of all dataset checks.
type Result struct {
	Status      string    `json:"status"` // PASS or FAIL
	Checks      []Check   `json:"checks"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Check is a single integrity condition.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Validate runs every integrity check against the dataset.
func Validate(ds *dataset.Dataset) *Result {
	result := &Result{
		Status:    "PASS",
		StartedAt: time.Now(),
	}

	result.add(checkDeliveryLinks(ds))
	result.add(checkMatchTeams(ds))
	result.add(checkWinners(ds))
	result.add(checkInnings(ds))
	result.add(checkSkippedRows(ds))

	result.CompletedAt = time.Now()
	return result
}

func (r *Result) add(c Check) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Status = "FAIL"
	}
}

// checkDeliveryLinks verifies every delivery references a known match.
func checkDeliveryLinks(ds *dataset.Dataset) Check {
	orphans := 0
	for i := range ds.Deliveries {
		if ds.MatchByID(ds.Deliveries[i].MatchID) == nil {
			orphans++
		}
	}
	return Check{
		Name:   "delivery_match_link",
		Passed: orphans == 0,
		Detail: fmt.Sprintf("%d of %d deliveries reference an unknown match", orphans, len(ds.Deliveries)),
	}
}

// checkMatchTeams verifies every match names two distinct teams.
func checkMatchTeams(ds *dataset.Dataset) Check {
	bad := 0
	for i := range ds.Matches {
		m := &ds.Matches[i]
		if m.Team1 == "" || m.Team2 == "" || m.Team1 == m.Team2 {
			bad++
		}
	}
	return Check{
		Name:   "match_teams",
		Passed: bad == 0,
		Detail: fmt.Sprintf("%d of %d matches lack two distinct teams", bad, len(ds.Matches)),
	}
}

// checkWinners verifies winners and toss winners were participants.
func checkWinners(ds *dataset.Dataset) Check {
	bad := 0
	for i := range ds.Matches {
		m := &ds.Matches[i]
		if m.WinningTeam != "" && m.WinningTeam != m.Team1 && m.WinningTeam != m.Team2 {
			bad++
		}
		if m.TossWinner != "" && m.TossWinner != m.Team1 && m.TossWinner != m.Team2 {
			bad++
		}
	}
	return Check{
		Name:   "winner_participation",
		Passed: bad == 0,
		Detail: fmt.Sprintf("%d winner fields name a team that did not play", bad),
	}
}

// checkInnings verifies innings numbers are plausible (1-2, or up to 4 for
// super overs).
func checkInnings(ds *dataset.Dataset) Check {
	bad := 0
	for i := range ds.Deliveries {
		inn := ds.Deliveries[i].Innings
		if inn < 1 || inn > 4 {
			bad++
		}
	}
	return Check{
		Name:   "innings_range",
		Passed: bad == 0,
		Detail: fmt.Sprintf("%d deliveries carry an innings outside 1-4", bad),
	}
}

// checkSkippedRows reports rows dropped during load.
func checkSkippedRows(ds *dataset.Dataset) Check {
	skipped := ds.SkippedMatches + ds.SkippedDeliveries
	return Check{
		Name:   "skipped_rows",
		Passed: skipped == 0,
		Detail: fmt.Sprintf("%d rows were skipped during load", skipped),
	}
}
