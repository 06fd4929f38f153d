package pipeline

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

// ProcessBatch processes files one at a time in the given order. A failed file never
// stops its siblings, and neither do options that could not be read for one file: that
// file alone fails. Cancellation stops the batch before the next file and returns the
// results gathered so far.
func (p *Processor) ProcessBatch(
	ctx context.Context,
	files []domain.UploadedFile,
	optionsFor func(name string) (domain.CleaningOptions, error),
	theme domain.Theme,
) ([]*domain.FileResult, error) {
	results := make([]*domain.FileResult, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		opts, err := optionsFor(file.Name)
		if err != nil {
			results = append(results, p.reject(ctx, file, err))
			continue
		}

		results = append(results, p.Process(ctx, file, opts, theme))
	}

	p.log.DebugContext(ctx, "batch processed", slog.Int("files", len(results)))

	return results, nil
}
