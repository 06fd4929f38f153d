package chart_renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/table"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	maxSeries   = 2
	barWidth    = 24
	barSpacing  = 12
	chartHeight = 480
	minWidth    = 480
	axisWidth   = 96
)

type palette struct {
	background drawing.Color
	font       drawing.Color
	series     [maxSeries]drawing.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeLight: {
		background: chart.ColorWhite,
		font:       drawing.ColorFromHex("31333f"),
		series:     [maxSeries]drawing.Color{chart.ColorBlue, drawing.ColorFromHex("83c9ff")},
	},
	domain.ThemeDark: {
		background: drawing.ColorFromHex("0e1117"),
		font:       drawing.ColorFromHex("fafafa"),
		series:     [maxSeries]drawing.Color{drawing.ColorFromHex("0068c9"), drawing.ColorFromHex("83c9ff")},
	},
}

// Renderer draws a bar chart of the first two numeric columns of a table. Every row
// gets one bar per charted column, side by side, with heights on a shared axis from zero.
type Renderer struct {
	maxBars int
}

func New(maxBars int) *Renderer {
	return &Renderer{maxBars: maxBars}
}

// RenderBarChart returns the chart as PNG. Missing, non-positive and infinite cells add no height.
func (r *Renderer) RenderBarChart(t *table.Table, title string, theme domain.Theme) ([]byte, error) {
	numeric := t.NumericColumns()
	if len(numeric) == 0 {
		return nil, domain.ErrNothingToChart
	}
	numeric = numeric[:min(len(numeric), maxSeries)]

	projected, err := t.Project(numeric)
	if err != nil {
		return nil, fmt.Errorf("failed to select numeric columns: %w", err)
	}

	p, ok := palettes[theme]
	if !ok {
		p = palettes[domain.ThemeLight]
	}

	bars, top := r.bars(projected, len(numeric), p)
	if top == 0 {
		return nil, domain.ErrNothingToChart
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: p.font},
		Width:      max(minWidth, len(bars)*(barWidth+barSpacing)+axisWidth),
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: p.background,
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: p.background},
		XAxis:  chart.Style{FontColor: p.font, StrokeColor: p.font},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: p.font, StrokeColor: p.font},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.Bytes(), nil
}

// bars lays out the rows and returns the largest drawn height, zero when nothing is drawable.
func (r *Renderer) bars(t *table.Table, columns int, p palette) ([]chart.Value, float64) {
	rows := t.Rows()
	if r.maxBars > 0 {
		rows = min(rows, r.maxBars)
	}

	var top float64
	bars := make([]chart.Value, 0, rows*columns)

	for i := range rows {
		for c := range columns {
			v := t.Value(i, c)

			height := 0.0
			if !v.Missing && v.Number > 0 && !math.IsInf(v.Number, 1) {
				height = v.Number
				top = max(top, height)
			}

			// подпись только у первого столбца группы
			var label string
			if c == 0 {
				label = strconv.Itoa(i)
			}

			bars = append(bars, chart.Value{
				Label: label,
				Value: height,
				Style: chart.Style{FillColor: p.series[c], StrokeColor: p.series[c]},
			})
		}
	}

	return bars, top
}
