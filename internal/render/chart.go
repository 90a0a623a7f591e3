package render

import (
	"fmt"
	"strings"
)

// Point is one labeled value in a chart.
type Point struct {
	Label string
	Value float64
}

const defaultBarWidth = 40

// BarChart renders a horizontal bar chart scaled to the largest value.
// maxWidth <= 0 uses the default bar width.
func BarChart(title string, points []Point, maxWidth int) string {
	if len(points) == 0 {
		return dimStyle.Render("  (no data)") + "\n"
	}
	if maxWidth <= 0 {
		maxWidth = defaultBarWidth
	}

	labelWidth := 0
	max := 0.0
	for _, p := range points {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
		if p.Value > max {
			max = p.Value
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title) + "\n")
	}
	for i, p := range points {
		bar := 0
		if max > 0 {
			bar = int(p.Value / max * float64(maxWidth))
		}
		if bar == 0 && p.Value > 0 {
			bar = 1
		}
		style := barStyle
		if i%2 == 1 {
			style = altBarStyle
		}
		b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
			labelWidth, p.Label,
			style.Render(strings.Repeat("█", bar)),
			formatValue(p.Value)))
	}
	return b.String()
}

// SplitChart renders a two-way percentage split, the terminal stand-in for
// a pie chart.
func SplitChart(title, labelA string, pctA float64, labelB string, pctB float64, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}

	cellsA := int(pctA / 100 * float64(width))
	if cellsA > width {
		cellsA = width
	}
	cellsB := width - cellsA

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title) + "\n")
	}
	b.WriteString("  " + barStyle.Render(strings.Repeat("█", cellsA)) +
		altBarStyle.Render(strings.Repeat("█", cellsB)) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s %s   %s %s %s\n",
		barStyle.Render("■"), labelA, Percent(pctA),
		altBarStyle.Render("■"), labelB, Percent(pctB)))
	return b.String()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return Count(int(v))
	}
	return Rate(v)
}
