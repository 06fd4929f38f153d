package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	theme           domain.Theme
	reports         <-chan *domain.ConversionResult
	reportGenerator ReportGenerator
}

// NewReporter returns a reporter that writes one PDF per conversion into outputDir.
// With an empty outputDir reports are received and dropped.
func NewReporter(
	log *slog.Logger,
	outputDir string,
	theme domain.Theme,
	reports <-chan *domain.ConversionResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		theme:           theme,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case conversion, ok := <-r.reports:
			if !ok {
				return nil
			}

			if r.outputDir == "" {
				continue
			}

			log := r.log.With(
				slog.String("filename", conversion.Result.Filename),
				slog.String("state", string(conversion.Result.State)),
			)

			log.InfoContext(ctx, "received conversion result, generating report")

			if err := r.processResult(conversion.Result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.FileResult) error {
	pdf, err := r.reportGenerator.GenerateReport(result, r.theme)
	if err != nil {
		return err
	}

	path := filepath.Join(r.outputDir, reportName(result.Filename))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}

	return nil
}

func reportName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".pdf"
}
