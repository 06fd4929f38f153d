package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type Writer struct {
	log               *slog.Logger
	outboxDir         string
	results           <-chan *domain.ConversionResult
	reports           chan<- *domain.ConversionResult
	conversionUpdater ConversionUpdater
	columnsSaver      ColumnsSaver
	transactor        Transactor
}

func NewWriter(
	log *slog.Logger,
	outboxDir string,
	results <-chan *domain.ConversionResult,
	reports chan<- *domain.ConversionResult,
	conversionUpdater ConversionUpdater,
	columnsSaver ColumnsSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:               log,
		outboxDir:         outboxDir,
		results:           results,
		reports:           reports,
		conversionUpdater: conversionUpdater,
		columnsSaver:      columnsSaver,
		transactor:        transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case conversion, ok := <-w.results:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("filename", conversion.Result.Filename),
				slog.String("state", string(conversion.Result.State)),
			)

			log.InfoContext(ctx, "received conversion result")

			if err := w.processResult(ctx, log, conversion.Result); err != nil {
				log.ErrorContext(ctx, "failed to process conversion result", slog.String("err", err.Error()))
				continue
			}

			select {
			case w.reports <- conversion:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processResult records a successful conversion, or the error of a failed one. A result
// whose save transaction fails is recorded as failed outside that transaction, so the
// ledger never keeps it in processing.
func (w *Writer) processResult(ctx context.Context, log *slog.Logger, result *domain.FileResult) error {
	if result.Error == nil {
		log.DebugContext(ctx, "saving conversion result")

		err := w.saveResult(ctx, result)
		if err == nil {
			log.DebugContext(ctx, "result saved successfully")
			return nil
		}

		log.ErrorContext(ctx, "failed to save conversion result, recording error", slog.String("err", err.Error()))
		result.Fail(domain.StateFailed, fmt.Errorf("failed to save result: %w", err))
	}

	log.DebugContext(ctx, "processing error conversion result")

	return w.recordError(ctx, result)
}

func (w *Writer) recordError(ctx context.Context, result *domain.FileResult) error {
	now := time.Now()
	err := w.conversionUpdater.UpdateOrCreateConversion(ctx, &domain.Conversion{
		Name:         result.Filename,
		Status:       domain.StatusError,
		ErrorMessage: result.Error.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		return fmt.Errorf("failed to save conversion error: %w", err)
	}

	return nil
}

// saveResult records the conversion with its columns and writes the artifact in one
// transaction, so a failed write leaves the ledger untouched.
func (w *Writer) saveResult(ctx context.Context, result *domain.FileResult) error {
	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		conversion := &domain.Conversion{
			Name:        result.Filename,
			Status:      domain.StatusDone,
			ProcessedAt: &now,
		}
		if result.Final != nil {
			conversion.RowCount = result.Final.TotalRows
		}
		if result.Artifact != nil {
			conversion.OutputName = result.Artifact.Filename
		}

		err := w.conversionUpdater.UpdateOrCreateConversion(ctx, conversion)
		if err != nil {
			return fmt.Errorf("failed to update conversion status: %w", err)
		}

		err = w.columnsSaver.SaveConversionColumns(ctx, result.Filename, domain.ConversionColumns(result))
		if err != nil {
			return fmt.Errorf("failed to save conversion columns: %w", err)
		}

		if result.Artifact == nil {
			return nil
		}

		path := filepath.Join(w.outboxDir, result.Artifact.Filename)
		if err := os.WriteFile(path, result.Artifact.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write artifact: %w", err)
		}

		result.State = domain.StateDownloaded

		return nil
	})
}
