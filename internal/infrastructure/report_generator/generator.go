package report_generator

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

const (
	gridSize   = 12
	maxColumns = gridSize
	rowHeight  = 6
	chartRow   = 90
)

type style struct {
	header     *props.Color
	headerText *props.Color
	stripe     *props.Color
	text       *props.Color
}

var styles = map[domain.Theme]style{
	domain.ThemeLight: {
		header:     &props.Color{Red: 0, Green: 104, Blue: 201},
		headerText: &props.Color{Red: 255, Green: 255, Blue: 255},
		stripe:     &props.Color{Red: 240, Green: 242, Blue: 246},
		text:       &props.Color{Red: 49, Green: 51, Blue: 63},
	},
	domain.ThemeDark: {
		header:     &props.Color{Red: 14, Green: 17, Blue: 23},
		headerText: &props.Color{Red: 250, Green: 250, Blue: 250},
		stripe:     &props.Color{Red: 38, Green: 39, Blue: 48},
		text:       &props.Color{Red: 49, Green: 51, Blue: 63},
	},
}

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders a PDF summary of a processed file: counts, cleaning stats,
// the head of the final table and the chart when one was drawn.
func (g *Generator) GenerateReport(result *domain.FileResult, theme domain.Theme) ([]byte, error) {
	s, ok := styles[theme]
	if !ok {
		s = styles[domain.ThemeLight]
	}

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(12, result.Filename, props.Text{
			Top:   3,
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: s.text,
		}),
	)

	preview := result.Final
	if preview == nil {
		preview = result.Preview
	}

	m.AddRows(summaryRows(result, preview, s)...)

	if preview != nil && len(preview.Columns) > 0 {
		m.AddRows(tableRows(preview, s)...)
	}

	if len(result.Chart) > 0 {
		m.AddRows(image.NewFromBytesRow(chartRow, result.Chart, extension.Png, props.Rect{
			Top:     5,
			Center:  true,
			Percent: 100,
		}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return doc.GetBytes(), nil
}

func summaryRows(result *domain.FileResult, preview *domain.Preview, s style) []core.Row {
	lines := [][2]string{
		{"Format", string(result.Format)},
		{"State", string(result.State)},
	}

	if preview != nil {
		lines = append(lines,
			[2]string{"Rows", strconv.Itoa(preview.TotalRows)},
			[2]string{"Columns", strconv.Itoa(len(preview.Columns))},
		)
	}

	if st := result.Stats; st != nil {
		lines = append(lines,
			[2]string{"Duplicates removed", strconv.Itoa(st.DuplicatesRemoved)},
			[2]string{"Cells filled", strconv.Itoa(st.CellsFilled)},
		)

		names := make([]string, 0, len(st.Means))
		for name := range st.Means {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			lines = append(lines, [2]string{"Mean of " + name, strconv.FormatFloat(st.Means[name], 'g', 6, 64)})
		}

		for _, name := range st.SkippedColumns {
			lines = append(lines, [2]string{"Not filled", name})
		}
	}

	for _, w := range result.Warnings {
		lines = append(lines, [2]string{"Warning", w})
	}

	rows := make([]core.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, row.New(rowHeight).Add(
			text.NewCol(4, line[0], props.Text{Size: 9, Style: fontstyle.Bold, Color: s.text}),
			text.NewCol(8, line[1], props.Text{Size: 9, Color: s.text}),
		))
	}

	return rows
}

func tableRows(preview *domain.Preview, s style) []core.Row {
	columns := preview.Columns
	if len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}
	size := gridSize / len(columns)

	header := row.New(rowHeight + 1)
	for _, c := range columns {
		header.Add(text.NewCol(size, c.Name, props.Text{
			Top:   1,
			Size:  8,
			Style: fontstyle.Bold,
			Color: s.headerText,
		}))
	}
	header.WithStyle(&props.Cell{BackgroundColor: s.header})

	rows := []core.Row{row.New(5), header}

	for i, values := range preview.Rows {
		r := row.New(rowHeight)
		for c := range columns {
			var cell string
			if c < len(values) {
				cell = cellText(values[c])
			}
			r.Add(col.New(size).Add(text.New(cell, props.Text{Top: 1, Size: 8, Color: s.text})))
		}

		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: s.stripe})
		}

		rows = append(rows, r)
	}

	return rows
}

func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'g', 8, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
