package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/config"
	v1 "github.com/kurochkinivan/data_sweepers/internal/controller/http/v1"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/chart_renderer"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/spreadsheet"
	"github.com/kurochkinivan/data_sweepers/internal/metrics"
	"github.com/kurochkinivan/data_sweepers/internal/pipeline"
	"github.com/kurochkinivan/data_sweepers/internal/repository/memory"
	"github.com/kurochkinivan/data_sweepers/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	resultsBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

// ledger is the conversion store behind both the watch pipeline and the HTTP API.
type ledger interface {
	pipeline.ConversionsProvider
	pipeline.ConversionUpdater
	pipeline.ColumnsSaver
	v1.ConversionsRepository
	ResetProcessingConversions(ctx context.Context) error
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("store", a.cfg.Store.Driver),
		slog.String("theme", string(a.cfg.App.Theme)),
		slog.Bool("watch", a.cfg.Watch.Enabled()),
	)

	store, transactor, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.ResetProcessingConversions(ctx); err != nil {
		return fmt.Errorf("failed to reset processing conversions: %w", err)
	}

	m := metrics.New()
	processor := pipeline.NewProcessor(
		a.log,
		spreadsheet.New(),
		chart_renderer.New(a.cfg.App.ChartRows),
		m,
		a.cfg.App.PreviewRows,
	)
	reports := report_generator.New()

	router := v1.NewRouter(
		a.log,
		v1.NewFilesHandler(a.log, processor, reports, a.cfg.HTTP.MaxUploadSize, a.cfg.App.Theme),
		v1.NewConversionsHandler(a.log, store),
		m.Handler(),
	)
	server := v1.NewServer(a.cfg.HTTP, router)

	return a.start(ctx, server, processor, reports, store, transactor)
}

func (a *App) openStore(ctx context.Context) (ledger, pipeline.Transactor, func(), error) {
	switch a.cfg.Store.Driver {
	case config.StorePostgres:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return postgresql.NewLedger(pool), postgresql.NewTxManager(pool), pool.Close, nil

	case config.StoreMemory, "":
		store := memory.NewStore()
		return store, memory.NewTxManager(store), func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store %q", a.cfg.Store.Driver)
	}
}

func (a *App) start(
	ctx context.Context,
	server *v1.Server,
	processor *pipeline.Processor,
	reports pipeline.ReportGenerator,
	store ledger,
	transactor pipeline.Transactor,
) error {
	erg, ctx := errgroup.WithContext(ctx)

	if a.cfg.Watch.Enabled() {
		if err := prepareDirectories(a.cfg.Watch.OutboxDirectory, a.cfg.Watch.ReportsDirectory); err != nil {
			return err
		}

		a.startWatch(ctx, erg, processor, reports, store, transactor)
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

func (a *App) startWatch(
	ctx context.Context,
	erg *errgroup.Group,
	processor *pipeline.Processor,
	reports pipeline.ReportGenerator,
	store ledger,
	transactor pipeline.Transactor,
) {
	cfg := a.cfg.Watch

	a.log.InfoContext(ctx, "starting watch pipeline",
		slog.String("inbox_dir", cfg.InboxDirectory),
		slog.String("outbox_dir", cfg.OutboxDirectory),
		slog.String("reports_dir", cfg.ReportsDirectory),
		slog.Duration("scan_interval", cfg.ScanInterval),
	)

	files := make(chan string, filesBuffer)
	results := make(chan *domain.ConversionResult, resultsBuffer)
	reported := make(chan *domain.ConversionResult, reportsBuffer)

	scanner := pipeline.NewScanner(a.log, cfg.InboxDirectory, cfg.ScanInterval, files, store, store)
	converter := pipeline.NewConverter(a.log, files, results, processor, cfg.Options, a.cfg.App.Theme)
	writer := pipeline.NewWriter(a.log, cfg.OutboxDirectory, results, reported, store, store, transactor)
	reporter := pipeline.NewReporter(a.log, cfg.ReportsDirectory, a.cfg.App.Theme, reported, reports)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "converter started")
		return converter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})
}

func prepareDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	return nil
}
