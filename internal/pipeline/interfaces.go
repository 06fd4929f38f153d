package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/table"
)

type TableCodec interface {
	Load(format domain.Format, r io.Reader) (*table.Table, error)
	Encode(t *table.Table, format domain.Format, w io.Writer) error
}

type ChartRenderer interface {
	RenderBarChart(t *table.Table, title string, theme domain.Theme) ([]byte, error)
}

type MetricsRecorder interface {
	ObserveFile(format string, state string, elapsed time.Duration)
	ObserveExport(format string, size int)
}

type ConversionsProvider interface {
	Conversions(ctx context.Context) ([]*domain.Conversion, error)
}

type ConversionUpdater interface {
	UpdateOrCreateConversion(ctx context.Context, conversion *domain.Conversion) error
}

type ColumnsSaver interface {
	SaveConversionColumns(ctx context.Context, name string, columns []*domain.ConversionColumn) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(result *domain.FileResult, theme domain.Theme) ([]byte, error)
}

type FileProcessor interface {
	Process(ctx context.Context, file domain.UploadedFile, opts domain.CleaningOptions, theme domain.Theme) *domain.FileResult
}
