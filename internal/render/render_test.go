package render

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	out := Table("Seasons", []string{"Season", "Matches"}, [][]string{
		{"2008", "58"},
		{"2009", "57"},
	})

	for _, want := range []string{"Seasons", "Season", "Matches", "2008", "58", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableAlignsNumericColumns(t *testing.T) {
	out := Table("", []string{"Name", "Runs"}, [][]string{
		{"Kohli", "6634"},
		{"Raina", "539"},
	})

	// Right-aligned: the shorter number is padded on the left.
	if !strings.Contains(out, " 539") {
		t.Errorf("expected right-aligned numeric column:\n%s", out)
	}
}

func TestBarChart(t *testing.T) {
	out := BarChart("Tosses won", []Point{
		{Label: "MI", Value: 100},
		{Label: "CSK", Value: 50},
	}, 20)

	if !strings.Contains(out, "Tosses won") {
		t.Errorf("chart missing title:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("█", 20)) {
		t.Errorf("expected full-width bar for the max value:\n%s", out)
	}
	if !strings.Contains(out, "100") || !strings.Contains(out, "50") {
		t.Errorf("chart missing values:\n%s", out)
	}
}

func TestBarChartTinyValuesStillVisible(t *testing.T) {
	out := BarChart("", []Point{
		{Label: "big", Value: 10000},
		{Label: "small", Value: 1},
	}, 20)

	// A non-zero value always draws at least one cell.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[len(lines)-1], "█") {
		t.Errorf("expected visible bar for small value:\n%s", out)
	}
}

func TestBarChartEmpty(t *testing.T) {
	out := BarChart("x", nil, 0)
	if !strings.Contains(out, "no data") {
		t.Errorf("expected no-data placeholder, got %q", out)
	}
}

func TestSplitChart(t *testing.T) {
	out := SplitChart("Toss decision", "bat", 25, "field", 75, 40)

	if !strings.Contains(out, "25.0%") || !strings.Contains(out, "75.0%") {
		t.Errorf("split chart missing percentages:\n%s", out)
	}
	if !strings.Contains(out, "bat") || !strings.Contains(out, "field") {
		t.Errorf("split chart missing labels:\n%s", out)
	}
}

func TestFormatters(t *testing.T) {
	if got := Count(1234567); got != "1,234,567" {
		t.Errorf("expected 1,234,567, got %s", got)
	}
	if got := Rate(123.456); got != "123.46" {
		t.Errorf("expected 123.46, got %s", got)
	}
	if got := Percent(51.239); got != "51.2%" {
		t.Errorf("expected 51.2%%, got %s", got)
	}
}
