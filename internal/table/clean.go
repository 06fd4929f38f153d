package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
)

// DropDuplicates removes rows equal on every column to an earlier row, keeping the first
// occurrence and the order of the remaining rows. Missing cells compare equal to each other.
// It returns the number of removed rows.
func (t *Table) DropDuplicates() (int, error) {
	rows := t.Rows()
	if rows < 2 {
		return 0, nil
	}

	seen := make(map[string]struct{}, rows)
	keep := make([]int, 0, rows)

	for r := range rows {
		key := t.rowKey(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, r)
	}

	removed := rows - len(keep)
	if removed == 0 {
		return 0, nil
	}

	df := t.df.Subset(keep)
	if df.Err != nil {
		return 0, fmt.Errorf("failed to subset rows: %w", df.Err)
	}
	t.df = df

	return removed, nil
}

func (t *Table) rowKey(r int) string {
	var b strings.Builder
	for c, v := range t.Row(r) {
		if c > 0 {
			b.WriteByte(0x1f)
		}
		switch {
		case v.Missing:
			b.WriteString("\x00")
		case v.Integer:
			b.WriteString(strconv.FormatInt(v.Int, 10))
		case v.Kind == KindNumber:
			n := v.Number
			if n == 0 {
				n = 0 // -0 == 0
			}
			b.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
		default:
			b.WriteString("s")
			b.WriteString(v.Text)
		}
	}
	return b.String()
}

type FillReport struct {
	Filled  int
	Means   map[string]float64
	Skipped []string // numeric columns with no value to average
}

// FillMissing replaces missing cells of every numeric column with the mean of the column's
// present values. Text columns are left as they are, and so are numeric columns without
// any present value.
func (t *Table) FillMissing() (FillReport, error) {
	report := FillReport{Means: make(map[string]float64)}

	for _, name := range t.NumericColumns() {
		col := t.df.Col(name)

		var sum float64
		var present, missing int
		for i := range col.Len() {
			e := col.Elem(i)
			if e.IsNA() {
				missing++
				continue
			}
			sum += e.Float()
			present++
		}

		if missing == 0 {
			continue
		}
		if present == 0 {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		mean := sum / float64(present)
		values := make([]string, col.Len())
		for i := range values {
			e := col.Elem(i)
			if e.IsNA() {
				values[i] = strconv.FormatFloat(mean, 'g', -1, 64)
				continue
			}
			values[i] = strconv.FormatFloat(e.Float(), 'g', -1, 64)
		}

		filled := series.New(values, series.Float, name)
		if filled.Err != nil {
			return report, fmt.Errorf("column %q: %w", name, filled.Err)
		}

		df := t.df.Mutate(filled)
		if df.Err != nil {
			return report, fmt.Errorf("failed to replace column %q: %w", name, df.Err)
		}
		t.df = df

		report.Filled += missing
		report.Means[name] = mean
	}

	return report, nil
}
