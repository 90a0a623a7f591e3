package explorer

import (
	"fmt"
	"strings"

	"github.com/cricsight/cricsight/internal/config"
	"github.com/cricsight/cricsight/internal/dataset"
	"github.com/cricsight/cricsight/internal/render"
	"github.com/cricsight/cricsight/internal/stats"
)

// Topic is one entry in the explorer catalog.
type Topic struct {
	ID     string
	Title  string
	Render func(ds *dataset.Dataset, th config.ThresholdConfig) string
}

// Topics returns the fixed analysis catalog in display order.
func Topics() []Topic {
	return []Topic{
		{
			ID:    "seasons",
			Title: "Matches and runs per season",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				summaries := stats.SeasonSummaries(ds)
				rows := make([][]string, len(summaries))
				points := make([]render.Point, len(summaries))
				for i, s := range summaries {
					rows[i] = []string{s.Season, render.Count(s.Matches), render.Count(s.TotalRuns), render.Rate(s.RunsPerMatch)}
					points[i] = render.Point{Label: s.Season, Value: float64(s.Matches)}
				}
				return render.Table("Seasons", []string{"Season", "Matches", "Runs", "Runs/Match"}, rows) +
					"\n" + render.BarChart("Matches per season", points, 0)
			},
		},
		{
			ID:    "toss-wins",
			Title: "Tosses won by each team",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				wins := stats.TossWinsByTeam(ds)
				points := make([]render.Point, len(wins))
				for i, g := range wins {
					points[i] = render.Point{Label: g.Key, Value: g.Value}
				}
				return render.BarChart("Tosses won", points, 0)
			},
		},
		{
			ID:    "toss-decision",
			Title: "Toss decision split",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				split := stats.TossDecisionSplit(ds)
				out := render.SplitChart("Toss decision", "bat", split.BatPct, "field", split.FieldPct, 0)

				decisions := stats.TossDecisionBySeason(ds)
				rows := make([][]string, len(decisions))
				for i, d := range decisions {
					rows[i] = []string{d.Season, render.Count(d.Bat), render.Count(d.Field)}
				}
				return out + "\n" + render.Table("Decision by season", []string{"Season", "Bat", "Field"}, rows)
			},
		},
		{
			ID:    "toss-correlation",
			Title: "Does winning the toss win the match?",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				c := stats.TossMatchCorrelation(ds)
				out := render.SplitChart("Toss winner won the match", "yes", c.BothPct, "no", 100-c.BothPct, 0)
				if c.Excluded > 0 {
					out += fmt.Sprintf("  (%d no-result matches excluded)\n", c.Excluded)
				}
				return out
			},
		},
		{
			ID:    "top-scorers",
			Title: "Top run scorers",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				return batterTable("Top run scorers", stats.TopRunScorers(ds, th.TopN))
			},
		},
		{
			ID:    "strike-rates",
			Title: "Best strike rates",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				out := batterTable("Best strike rates", stats.StrikeRates(ds, th.TopN, th.MinBallsFaced))
				return out + fmt.Sprintf("\n  (minimum %d balls faced)\n", th.MinBallsFaced)
			},
		},
		{
			ID:    "boundaries",
			Title: "Most sixes and fours",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				sixes := stats.MostSixes(ds, th.TopN)
				rows := make([][]string, len(sixes))
				for i, bs := range sixes {
					rows[i] = []string{bs.Name, render.Count(bs.Sixes), render.Count(bs.Fours)}
				}
				return render.Table("Most sixes", []string{"Batter", "Sixes", "Fours"}, rows)
			},
		},
		{
			ID:    "highest-totals",
			Title: "Highest team totals",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				totals := stats.HighestTotals(ds, th.TopN)
				rows := make([][]string, len(totals))
				for i, ti := range totals {
					rows[i] = []string{ti.Team, ti.Season, render.Count(ti.Runs)}
				}
				return render.Table("Highest totals", []string{"Team", "Season", "Runs"}, rows)
			},
		},
		{
			ID:    "wicket-takers",
			Title: "Top wicket takers",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				return bowlerTable("Top wicket takers", stats.TopWicketTakers(ds, th.TopN))
			},
		},
		{
			ID:    "economy",
			Title: "Best economy rates",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				out := bowlerTable("Best economy", stats.EconomyRates(ds, th.TopN, th.MinBallsBowled))
				return out + fmt.Sprintf("\n  (minimum %d balls bowled)\n", th.MinBallsBowled)
			},
		},
		{
			ID:    "team-records",
			Title: "Team win records",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				records := stats.TeamRecords(ds)
				rows := make([][]string, len(records))
				for i, tr := range records {
					rows[i] = []string{tr.Team, render.Count(tr.Played), render.Count(tr.Won),
						render.Count(tr.NoResults), render.Percent(tr.WinPct)}
				}
				return render.Table("Team records", []string{"Team", "Played", "Won", "NR", "Win %"}, rows)
			},
		},
		{
			ID:    "margins",
			Title: "Biggest wins",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				byRuns, byWickets := stats.BiggestWins(ds, th.TopN)
				var b strings.Builder
				b.WriteString(marginTable("Biggest wins by runs", byRuns))
				b.WriteString("\n")
				b.WriteString(marginTable("Biggest wins by wickets", byWickets))
				return b.String()
			},
		},
		{
			ID:    "phases",
			Title: "Run rates by innings phase",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				rates := stats.PhaseRunRates(ds)
				rows := make([][]string, len(rates))
				for i, pr := range rates {
					rows[i] = []string{pr.Team, render.Rate(pr.PowerplayRate), render.Rate(pr.MiddleRate), render.Rate(pr.DeathRate)}
				}
				return render.Table("Run rate per over by phase",
					[]string{"Team", "Powerplay", "Middle", "Death"}, rows)
			},
		},
		{
			ID:    "venues",
			Title: "Matches per venue",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				venues := stats.MatchesPerVenue(ds, th.TopN)
				points := make([]render.Point, len(venues))
				for i, g := range venues {
					points[i] = render.Point{Label: g.Key, Value: g.Value}
				}
				return render.BarChart("Matches per venue", points, 0)
			},
		},
		{
			ID:    "awards",
			Title: "Man of the Match leaders",
			Render: func(ds *dataset.Dataset, th config.ThresholdConfig) string {
				leaders := stats.PlayerOfMatchLeaders(ds, th.TopN)
				points := make([]render.Point, len(leaders))
				for i, g := range leaders {
					points[i] = render.Point{Label: g.Key, Value: g.Value}
				}
				return render.BarChart("MOM awards", points, 0)
			},
		},
	}
}

func batterTable(title string, batters []stats.BatterStats) string {
	rows := make([][]string, len(batters))
	for i, bs := range batters {
		rows[i] = []string{bs.Name, render.Count(bs.Runs), render.Count(bs.BallsFaced), render.Rate(bs.StrikeRate)}
	}
	return render.Table(title, []string{"Batter", "Runs", "Balls", "SR"}, rows)
}

func bowlerTable(title string, bowlers []stats.BowlerStats) string {
	rows := make([][]string, len(bowlers))
	for i, bs := range bowlers {
		rows[i] = []string{bs.Name, render.Count(bs.Wickets), render.Count(bs.RunsConceded), render.Rate(bs.Economy)}
	}
	return render.Table(title, []string{"Bowler", "Wickets", "Runs", "Econ"}, rows)
}

func marginTable(title string, matches []dataset.Match) string {
	rows := make([][]string, len(matches))
	for i, m := range matches {
		loser := m.Team1
		if loser == m.WinningTeam {
			loser = m.Team2
		}
		rows[i] = []string{m.WinningTeam, loser, m.Season, render.Count(m.Margin)}
	}
	return render.Table(title, []string{"Winner", "Against", "Season", "Margin"}, rows)
}
