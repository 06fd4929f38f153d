package domain

import "time"

type Conversion struct {
	Name         string     `csv:"name"          db:"name"          json:"name"`
	Status       Status     `csv:"status"        db:"status"        json:"status"`
	OutputName   string     `csv:"output_name"   db:"output_name"   json:"output_name,omitempty"`
	RowCount     int        `csv:"row_count"     db:"row_count"     json:"row_count"`
	ErrorMessage string     `csv:"error_message" db:"error_message" json:"error_message,omitempty"`
	ProcessedAt  *time.Time `csv:"processed_at"  db:"processed_at"  json:"processed_at,omitempty"`
}

// ConversionResult travels through the watch pipeline stages.
type ConversionResult struct {
	Path   string
	Result *FileResult
}

// ConversionColumn describes one column of a finished conversion. Mean is set for
// numeric columns whose missing cells were filled.
type ConversionColumn struct {
	ConversionName string   `db:"conversion_name" json:"-"`
	Position       int      `db:"position"        json:"position"`
	Name           string   `db:"name"            json:"name"`
	Kind           string   `db:"kind"            json:"kind"`
	Mean           *float64 `db:"mean"            json:"mean,omitempty"`
}

// ConversionColumns lists the final columns of a result in table order.
func ConversionColumns(result *FileResult) []*ConversionColumn {
	if result.Final == nil {
		return nil
	}

	columns := make([]*ConversionColumn, len(result.Final.Columns))
	for i, c := range result.Final.Columns {
		column := &ConversionColumn{
			ConversionName: result.Filename,
			Position:       i,
			Name:           c.Name,
			Kind:           c.Kind,
		}
		if result.Stats != nil {
			if mean, ok := result.Stats.Means[c.Name]; ok {
				column.Mean = &mean
			}
		}
		columns[i] = column
	}

	return columns
}
