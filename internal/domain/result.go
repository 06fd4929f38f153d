package domain

type ColumnInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Preview is a snapshot of a table: its columns, the first rows and the total row count.
// Missing cells are nil.
type Preview struct {
	Columns   []ColumnInfo `json:"columns"`
	Rows      [][]any      `json:"rows"`
	TotalRows int          `json:"total_rows"`
}

type CleaningStats struct {
	DuplicatesRemoved int                `json:"duplicates_removed"`
	CellsFilled       int                `json:"cells_filled"`
	Means             map[string]float64 `json:"means,omitempty"`
	SkippedColumns    []string           `json:"skipped_columns,omitempty"` // numeric columns without any value
}

type FileResult struct {
	Filename string
	Format   Format
	State    State
	Preview  *Preview // as loaded
	Final    *Preview // after cleaning and projection
	Stats    *CleaningStats
	Chart    []byte // PNG
	// ChartError explains a missing Chart when one was requested. It never fails the file.
	ChartError error
	Artifact *ExportArtifact
	Warnings []string
	Error    error // filled in case of a failure
}

func (r *FileResult) Fail(state State, err error) *FileResult {
	r.State = state
	r.Error = NewFileError(r.Filename, err)
	return r
}
