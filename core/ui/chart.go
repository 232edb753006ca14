package ui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"solar-quote/core/projection"
	"solar-quote/core/types"
)

const (
	markWithout = '*'
	markWith    = 'o'
	markBoth    = '#'
	cellWidth   = 6
)

// ChartConfig holds the labels of the comparison chart
type ChartConfig struct {
	Title        string
	WithoutLabel string
	WithLabel    string
	Height       int
}

// DefaultChartConfig labels the series with their units
func DefaultChartConfig(currency types.Currency) ChartConfig {
	return ChartConfig{
		Title:        "Cost comparison: with and without solar",
		WithoutLabel: "Without solar (cumulative consumption, kWh)",
		WithLabel:    "With solar (installation cost not yet recovered, " + currency.String() + ")",
		Height:       10,
	}
}

// Chart draws both projection series as an ASCII line chart followed by
// a table of the plotted values.
func (w *Writer) Chart(cfg ChartConfig, p types.Projection) {
	w.Header(cfg.Title)

	n := len(p.Years)
	if n == 0 {
		w.Warning("Nothing to plot.")
		return
	}

	height := cfg.Height
	if height < 2 {
		height = 10
	}

	top := decimal.Zero
	for i := 0; i < n; i++ {
		top = decimal.Max(top, p.WithoutSolar[i], p.WithSolar[i])
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", n))
	}
	for i := 0; i < n; i++ {
		grid[plotRow(p.WithoutSolar[i], top, height)][i] = markWithout
		r := plotRow(p.WithSolar[i], top, height)
		if grid[r][i] == markWithout {
			grid[r][i] = markBoth
		} else {
			grid[r][i] = markWith
		}
	}

	axisWidth := len(top.StringFixed(0))
	for r := height - 1; r >= 0; r-- {
		level := top.Mul(decimal.NewFromInt(int64(r))).Div(decimal.NewFromInt(int64(height - 1)))
		var line strings.Builder
		line.WriteString(padLeft(level.StringFixed(0), axisWidth))
		line.WriteString(" ┤")
		for _, mark := range grid[r] {
			line.WriteString(strings.Repeat(" ", cellWidth-1))
			line.WriteString(w.mark(mark))
		}
		w.Println("%s", strings.TrimRight(line.String(), " "))
	}

	w.Println("%s └%s", strings.Repeat(" ", axisWidth), strings.Repeat("─", n*cellWidth))
	var years strings.Builder
	for _, y := range p.Years {
		years.WriteString(padLeft(strconv.Itoa(y), cellWidth))
	}
	w.Println("%s  %s  (year)", strings.Repeat(" ", axisWidth), years.String())
	w.Println("")
	w.Println("  %s %s", w.mark(markWithout), cfg.WithoutLabel)
	w.Println("  %s %s", w.mark(markWith), cfg.WithLabel)
	w.Println("  %s both series at the same level", w.mark(markBoth))
	w.Println("")

	if top.IsPositive() {
		if year := projection.BreakEvenYear(p); year > 0 {
			w.Info("Installation cost recovered by year %d.", year)
		} else {
			w.Info("Installation cost not recovered within %d years.", n)
		}
		w.Println("")
	}

	table := w.NewTable("Year", "Without solar", "With solar")
	for i := 0; i < n; i++ {
		table.AddRow(strconv.Itoa(p.Years[i]), p.WithoutSolar[i].StringFixed(2), p.WithSolar[i].StringFixed(2))
	}
	table.Render()
}

// plotRow maps a value onto [0, height-1], rounding to the nearest row
func plotRow(v, top decimal.Decimal, height int) int {
	if !top.IsPositive() || !v.IsPositive() {
		return 0
	}
	row := v.Mul(decimal.NewFromInt(int64(height - 1))).Div(top).Round(0).IntPart()
	if row >= int64(height) {
		return height - 1
	}
	return int(row)
}

func (w *Writer) mark(r rune) string {
	switch r {
	case markWithout:
		return w.color(Yellow, string(r))
	case markWith:
		return w.color(Green, string(r))
	case markBoth:
		return w.color(Cyan, string(r))
	}
	return string(r)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
