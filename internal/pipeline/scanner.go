package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type Scanner struct {
	log                 *slog.Logger
	inboxDir            string
	scanInterval        time.Duration
	files               chan<- string
	conversionsProvider ConversionsProvider
	conversionUpdater   ConversionUpdater
}

func NewScanner(
	log *slog.Logger,
	inboxDir string,
	scanInterval time.Duration,
	files chan<- string,
	conversionsProvider ConversionsProvider,
	conversionUpdater ConversionUpdater,
) *Scanner {
	return &Scanner{
		log:                 log,
		inboxDir:            inboxDir,
		scanInterval:        scanInterval,
		files:               files,
		conversionsProvider: conversionsProvider,
		conversionUpdater:   conversionUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	known, err := s.knownConversions(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.inboxDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.inboxDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, known)
		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

func (s *Scanner) knownConversions(ctx context.Context) (map[string]domain.Status, error) {
	conversions, err := s.conversionsProvider.Conversions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversions: %w", err)
	}

	known := make(map[string]domain.Status, len(conversions))
	for _, c := range conversions {
		known[c.Name] = c.Status
	}

	return known, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, known map[string]domain.Status) error {
	if entry.IsDir() || skipped(entry.Name()) {
		return nil
	}

	status, ok := known[entry.Name()]
	if ok && status != domain.StatusPending {
		return nil
	}

	err := s.conversionUpdater.UpdateOrCreateConversion(ctx, &domain.Conversion{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update conversion status: %w", err)
	}

	s.log.DebugContext(ctx, "updated conversion status to processing", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.inboxDir, entry.Name()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// skipped reports hidden files and the lock files office suites leave next to open workbooks.
func skipped(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$")
}
