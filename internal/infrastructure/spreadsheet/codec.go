package spreadsheet

import (
	"fmt"
	"io"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/table"
)

// Codec loads tables from and encodes tables to the supported spreadsheet formats.
type Codec struct{}

func New() *Codec {
	return &Codec{}
}

// Load parses r according to format. Malformed input yields an error wrapping
// domain.ErrParseFailure.
func (c *Codec) Load(format domain.Format, r io.Reader) (*table.Table, error) {
	var (
		t   *table.Table
		err error
	)

	switch format {
	case domain.FormatCSV:
		t, err = readCSV(r)
	case domain.FormatXLSX:
		t, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailure, err)
	}

	return t, nil
}

// Encode writes t to w in format. Failures wrap domain.ErrSerialization.
func (c *Codec) Encode(t *table.Table, format domain.Format, w io.Writer) error {
	var err error

	switch format {
	case domain.FormatCSV:
		err = writeCSV(t, w)
	case domain.FormatXLSX:
		err = writeXLSX(t, w)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSerialization, err)
	}

	return nil
}
