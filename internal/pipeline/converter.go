package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

// Converter applies the cleaning options of watch mode to every file the scanner hands over.
type Converter struct {
	log       *slog.Logger
	files     <-chan string
	results   chan<- *domain.ConversionResult
	processor FileProcessor
	opts      domain.CleaningOptions
	theme     domain.Theme
}

func NewConverter(
	log *slog.Logger,
	files <-chan string,
	results chan<- *domain.ConversionResult,
	processor FileProcessor,
	opts domain.CleaningOptions,
	theme domain.Theme,
) *Converter {
	return &Converter{
		log:       log,
		files:     files,
		results:   results,
		processor: processor,
		opts:      opts,
		theme:     theme,
	}
}

func (c *Converter) Run(ctx context.Context) error {
	defer close(c.results)

	for {
		select {
		case path, ok := <-c.files:
			if !ok {
				return nil
			}

			c.log.DebugContext(ctx, "received file to convert", slog.String("filename", path))

			file := domain.UploadedFile{
				Name: filepath.Base(path),
				Open: func() (io.ReadCloser, error) { return os.Open(path) },
			}

			result := c.processor.Process(ctx, file, c.opts, c.theme)

			select {
			case c.results <- &domain.ConversionResult{Path: path, Result: result}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
