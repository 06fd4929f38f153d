package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kurochkinivan/data_sweepers/internal/table"
)

const utf8BOM = "\ufeff"

var errNoHeader = errors.New("no columns to parse")

func readCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(header), line, len(record))
		}

		rows = append(rows, record)
	}

	return table.New(header, rows)
}

func writeCSV(t *table.Table, w io.Writer) error {
	writer := csv.NewWriter(w)

	for _, record := range t.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
