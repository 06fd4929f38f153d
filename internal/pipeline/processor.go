package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/table"
)

// Processor runs one file through detect, load, clean, project, chart and export.
// It keeps no state between files.
type Processor struct {
	log         *slog.Logger
	codec       TableCodec
	charts      ChartRenderer
	metrics     MetricsRecorder
	previewRows int
}

func NewProcessor(
	log *slog.Logger,
	codec TableCodec,
	charts ChartRenderer,
	metrics MetricsRecorder,
	previewRows int,
) *Processor {
	return &Processor{
		log:         log,
		codec:       codec,
		charts:      charts,
		metrics:     metrics,
		previewRows: previewRows,
	}
}

// Process never returns a nil result. A failure is recorded in result.Error
// together with the state the file stopped in.
func (p *Processor) Process(
	ctx context.Context,
	file domain.UploadedFile,
	opts domain.CleaningOptions,
	theme domain.Theme,
) (result *domain.FileResult) {
	start := time.Now()
	log := p.log.With(slog.String("filename", file.Name))

	result = &domain.FileResult{
		Filename: file.Name,
		Format:   domain.DetectFormat(file.Name),
		State:    domain.StateUploaded,
	}

	defer func() {
		p.metrics.ObserveFile(string(result.Format), string(result.State), time.Since(start))

		if result.Error != nil {
			log.WarnContext(ctx, "file processing failed",
				slog.String("state", string(result.State)),
				slog.String("err", result.Error.Error()),
			)
		}
	}()

	if err := opts.Validate(); err != nil {
		return result.Fail(domain.StateFailed, err)
	}

	if !result.Format.Supported() {
		return result.Fail(domain.StateUnsupported,
			fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(file.Name)))
	}

	t, err := p.load(file, result.Format)
	if err != nil {
		return result.Fail(domain.StateParseFailure, err)
	}

	result.State = domain.StateParsed
	result.Preview = p.preview(t)

	log.DebugContext(ctx, "file parsed",
		slog.Int("rows", t.Rows()),
		slog.Int("columns", len(t.Names())),
	)

	if opts.Cleans() {
		stats, err := clean(t, opts)
		if err != nil {
			return result.Fail(domain.StateFailed, err)
		}

		result.Stats = stats
		result.State = domain.StateCleaned
	}

	if opts.Columns != nil {
		projected, err := t.Project(opts.Columns)
		if err != nil {
			return result.Fail(domain.StateFailed, fmt.Errorf("%w: %w", domain.ErrInvalidSelection, err))
		}

		t = projected
		result.State = domain.StateProjected
	}

	result.Final = p.preview(t)

	if opts.Chart {
		png, err := p.charts.RenderBarChart(t, file.Name, theme)
		switch {
		case err == nil:
			result.Chart = png
		case errors.Is(err, domain.ErrNothingToChart):
			result.ChartError = err
			result.Warnings = append(result.Warnings, err.Error())
		default:
			result.ChartError = err
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to render chart: %s", err))
			log.ErrorContext(ctx, "failed to render chart", slog.String("err", err.Error()))
		}
	}

	if opts.Format != "" {
		artifact, err := p.export(t, file.Name, opts.Format)
		if err != nil {
			return result.Fail(domain.StateFailed, err)
		}

		p.metrics.ObserveExport(string(opts.Format), artifact.Size())

		result.Artifact = artifact
		result.State = domain.StateExported
	}

	return result
}

// reject fails a file before its content is read.
func (p *Processor) reject(ctx context.Context, file domain.UploadedFile, err error) *domain.FileResult {
	result := &domain.FileResult{
		Filename: file.Name,
		Format:   domain.DetectFormat(file.Name),
	}
	result.Fail(domain.StateFailed, err)

	p.metrics.ObserveFile(string(result.Format), string(result.State), 0)
	p.log.WarnContext(ctx, "file rejected",
		slog.String("filename", file.Name),
		slog.String("err", result.Error.Error()),
	)

	return result
}

func (p *Processor) load(file domain.UploadedFile, format domain.Format) (_ *table.Table, err error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", domain.ErrParseFailure, err)
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	return p.codec.Load(format, rc)
}

func (p *Processor) export(t *table.Table, name string, format domain.Format) (*domain.ExportArtifact, error) {
	var buf bytes.Buffer
	if err := p.codec.Encode(t, format, &buf); err != nil {
		return nil, err
	}

	return &domain.ExportArtifact{
		Filename: domain.OutputFilename(name, format),
		MIMEType: format.MIMEType(),
		Data:     buf.Bytes(),
	}, nil
}

func (p *Processor) preview(t *table.Table) *domain.Preview {
	columns := t.Columns()
	info := make([]domain.ColumnInfo, len(columns))
	for i, c := range columns {
		info[i] = domain.ColumnInfo{Name: c.Name, Kind: string(c.Kind)}
	}

	head := t.Head(p.previewRows)
	rows := make([][]any, len(head))
	for i, values := range head {
		row := make([]any, len(values))
		for c, v := range values {
			row[c] = v.Any()
			// JSON has no infinities
			if math.IsInf(v.Number, 0) {
				row[c] = v.String()
			}
		}
		rows[i] = row
	}

	return &domain.Preview{
		Columns:   info,
		Rows:      rows,
		TotalRows: t.Rows(),
	}
}

// clean deduplicates before filling so the means come from the deduplicated rows.
func clean(t *table.Table, opts domain.CleaningOptions) (*domain.CleaningStats, error) {
	stats := &domain.CleaningStats{}

	if opts.DropDuplicates {
		removed, err := t.DropDuplicates()
		if err != nil {
			return nil, fmt.Errorf("failed to drop duplicates: %w", err)
		}
		stats.DuplicatesRemoved = removed
	}

	if opts.FillMissing {
		report, err := t.FillMissing()
		if err != nil {
			return nil, fmt.Errorf("failed to fill missing values: %w", err)
		}
		stats.CellsFilled = report.Filled
		stats.Means = report.Means
		stats.SkippedColumns = report.Skipped
	}

	return stats, nil
}
