package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/kurochkinivan/data_sweepers/internal/table"
	"github.com/xuri/excelize/v2"
)

var errInfinity = errors.New("infinite values cannot be stored in a workbook")

// readXLSX loads the first sheet of the workbook. The first non-empty row is the header,
// fully empty rows are skipped.
func readXLSX(r io.Reader) (_ *table.Table, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var rows [][]string
	width := 0
	for _, row := range raw {
		if isEmptyRow(row) {
			continue
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errNoHeader
	}

	header := make([]string, width)
	copy(header, rows[0])

	return table.New(header, rows[1:])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func writeXLSX(t *table.Table, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	sheet := f.GetSheetName(0)

	names := t.Names()
	header := make([]any, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for r := range t.Rows() {
		row := t.Row(r)
		values := make([]any, len(row))
		for c, v := range row {
			if !v.Missing && v.Kind == table.KindNumber && math.IsInf(v.Number, 0) {
				return fmt.Errorf("row %d, column %q: %w", r+1, names[c], errInfinity)
			}
			values[c] = v.Any()
		}

		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", r+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
