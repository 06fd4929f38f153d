package table

import (
	"fmt"
	"slices"
)

// Project returns a new table holding only the named columns, in the requested order.
func (t *Table) Project(names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrEmptySelection
	}

	existing := t.Names()
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !slices.Contains(existing, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
	}

	df := t.df.Select(names)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to select columns: %w", df.Err)
	}

	return &Table{df: df}, nil
}

// Head returns the first n rows, or all of them when the table is shorter.
func (t *Table) Head(n int) [][]Value {
	n = min(n, t.Rows())
	rows := make([][]Value, 0, max(n, 0))
	for r := 0; r < n; r++ {
		rows = append(rows, t.Row(r))
	}
	return rows
}
