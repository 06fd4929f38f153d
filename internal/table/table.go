// Package table holds the in-memory tabular structure the cleaning pipeline mutates.
// Storage is a gota dataframe; this package adds missing-value semantics, column kinds
// and the dedup/fill/projection operations on top of it.
package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
)

// naToken is how gota marks a missing element in every series type.
const naToken = "NaN"

var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

var (
	ErrEmpty           = errors.New("table has no columns")
	ErrEmptySelection  = errors.New("no columns selected")
	ErrUnknownColumn   = errors.New("column not present")
	ErrDuplicateColumn = errors.New("column selected twice")
)

// IsMissing reports whether a raw cell denotes a missing value.
func IsMissing(raw string) bool {
	_, ok := missingTokens[raw]
	return ok
}

type Column struct {
	Name string
	Kind Kind
}

// Table is an ordered set of uniquely named columns over rows of equal width.
type Table struct {
	df dataframe.DataFrame
}

// New builds a table from a header and raw string rows. Rows shorter than the header
// are padded with missing cells. Empty and duplicated header names are renamed so that
// names stay unique.
func New(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmpty
	}

	names := normalizeHeader(header)
	columns := make([]series.Series, len(names))

	for c, name := range names {
		raw := make([]string, len(rows))
		for r, row := range rows {
			if len(row) > len(names) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", r+1, len(row), len(names))
			}
			if c < len(row) {
				raw[r] = row[c]
			}
		}

		s, err := buildSeries(name, raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		columns[c] = s
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build dataframe: %w", df.Err)
	}

	return &Table{df: df}, nil
}

func buildSeries(name string, raw []string) (series.Series, error) {
	values := make([]string, len(raw))
	t := inferType(raw)

	for i, v := range raw {
		switch {
		case IsMissing(v):
			values[i] = naToken
		case t == series.String:
			values[i] = v
		default:
			values[i] = strings.TrimSpace(v)
		}
	}

	s := series.New(values, t, name)
	if s.Err != nil {
		return s, s.Err
	}

	return s, nil
}

// inferType classifies a column: Int when every cell is an integer and none is missing,
// Float when every non-missing cell is numeric, String otherwise. A column without any
// value is String.
func inferType(raw []string) series.Type {
	var values, missing int
	integers := true

	for _, v := range raw {
		if IsMissing(v) {
			missing++
			continue
		}

		v = strings.TrimSpace(v)
		if !isNumber(v) {
			return series.String
		}
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			integers = false
		}
		values++
	}

	switch {
	case values == 0:
		return series.String
	case integers && missing == 0:
		return series.Int
	default:
		return series.Float
	}
}

func isNumber(v string) bool {
	if v == "" {
		return false
	}
	lower := strings.ToLower(v)
	if strings.ContainsAny(lower, "x_") {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	suffixes := make(map[string]int, len(header))

	for i, h := range header {
		name := h
		if strings.TrimSpace(h) == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		base := name
		for used[name] {
			suffixes[base]++
			name = base + "." + strconv.Itoa(suffixes[base])
		}

		used[name] = true
		names[i] = name
	}

	return names
}

func (t *Table) Rows() int {
	return t.df.Nrow()
}

func (t *Table) Names() []string {
	return t.df.Names()
}

func (t *Table) Columns() []Column {
	names := t.df.Names()
	types := t.df.Types()

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Kind: kindOf(types[i])}
	}

	return columns
}

// NumericColumns returns the names of number columns in table order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, c := range t.Columns() {
		if c.Kind == KindNumber {
			names = append(names, c.Name)
		}
	}
	return names
}

func (t *Table) Value(row, col int) Value {
	e := t.df.Elem(row, col)
	if e.IsNA() {
		return Value{Kind: kindOf(e.Type()), Missing: true}
	}

	switch e.Type() {
	case series.Int:
		i, err := e.Int()
		if err != nil {
			return Value{Kind: KindNumber, Missing: true}
		}
		return Value{Kind: KindNumber, Number: float64(i), Integer: true, Int: int64(i)}
	case series.Float:
		return Value{Kind: KindNumber, Number: e.Float()}
	default:
		return Value{Kind: KindText, Text: e.String()}
	}
}

// Row returns the values of one row in column order.
func (t *Table) Row(row int) []Value {
	values := make([]Value, t.df.Ncol())
	for c := range values {
		values[c] = t.Value(row, c)
	}
	return values
}

// Records renders the header and every row as strings, missing cells as "".
func (t *Table) Records() [][]string {
	records := make([][]string, 0, t.Rows()+1)
	records = append(records, t.Names())

	for r := range t.Rows() {
		row := t.Row(r)
		record := make([]string, len(row))
		for c, v := range row {
			record[c] = v.String()
		}
		records = append(records, record)
	}

	return records
}

func kindOf(t series.Type) Kind {
	if t == series.Int || t == series.Float {
		return KindNumber
	}
	return KindText
}

// Value is one cell. Number is set for numeric columns, Text for text columns.
type Value struct {
	Kind    Kind
	Missing bool
	Number  float64
	Integer bool
	Int     int64 // set when Integer
	Text    string
}

func (v Value) String() string {
	switch {
	case v.Missing:
		return ""
	case v.Kind == KindText:
		return v.Text
	case v.Integer:
		return strconv.FormatInt(v.Int, 10)
	default:
		return formatFloat(v.Number)
	}
}

// Any returns the cell as nil, int64, float64 or string.
func (v Value) Any() any {
	switch {
	case v.Missing:
		return nil
	case v.Kind == KindText:
		return v.Text
	case v.Integer:
		return v.Int
	default:
		return v.Number
	}
}

// formatFloat keeps a fractional part on integral values ("2.0") so float columns
// round-trip as floats.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.Abs(f) >= 1e16 {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
