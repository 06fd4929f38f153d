package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/data_sweepers/internal/app"
	appconfig "github.com/kurochkinivan/data_sweepers/internal/config"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "data_sweepers",
		Usage:   "CSV/XLSX cleaning service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := appconfig.Load(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.IntFlag{
			Name:    "preview-rows",
			Usage:   "Set number of head rows shown in previews",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.preview_rows", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "chart-rows",
			Usage:   "Set maximum number of bars in a chart",
			Value:   50,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.chart_rows", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "theme",
			Usage:     "Set default chart and report theme (light/dark)",
			Value:     string(domain.ThemeLight),
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.theme", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateTheme,
		},
		&cli.StringFlag{
			Name:      "inbox-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for new files, empty disables watch mode",
			Sources:   cli.NewValueSourceChain(yaml.YAML("watch.inbox_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "outbox-dir",
			Aliases:   []string{"o"},
			Usage:     "Set directory to write converted files to",
			Value:     "output",
			Sources:   cli.NewValueSourceChain(yaml.YAML("watch.outbox_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write PDF reports to, empty disables reports",
			Sources:   cli.NewValueSourceChain(yaml.YAML("watch.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:      "scan-interval",
			Aliases:   []string{"s"},
			Value:     3 * time.Second,
			Usage:     "Set directory scan interval",
			Sources:   cli.NewValueSourceChain(yaml.YAML("watch.scan_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateInterval,
		},
		&cli.StringFlag{
			Name:      "watch-format",
			Usage:     "Set output format of watched files (csv/xlsx), empty skips the export",
			Value:     string(domain.FormatCSV),
			Sources:   cli.NewValueSourceChain(yaml.YAML("watch.format", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateFormat,
		},
		&cli.BoolFlag{
			Name:    "watch-drop-duplicates",
			Usage:   "Drop duplicate rows of watched files",
			Value:   true,
			Sources: cli.NewValueSourceChain(yaml.YAML("watch.drop_duplicates", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "watch-fill-missing",
			Usage:   "Fill missing numeric cells of watched files with column means",
			Value:   true,
			Sources: cli.NewValueSourceChain(yaml.YAML("watch.fill_missing", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "store",
			Usage:     "Set conversion ledger store (memory/postgres)",
			Value:     appconfig.StoreMemory,
			Sources:   cli.NewValueSourceChain(yaml.YAML("store.driver", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateStore,
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "data_sweepers",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 keeps the pgx default",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "http-max-upload-size",
			Usage:   "Set maximum upload body size in MiB",
			Value:   32,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.max_upload_size", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateTheme(theme string) error {
	_, err := domain.ParseTheme(theme)
	return err
}

func validateFormat(format string) error {
	switch domain.Format(format) {
	case "", domain.FormatCSV, domain.FormatXLSX:
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func validateStore(store string) error {
	if store != appconfig.StoreMemory && store != appconfig.StorePostgres {
		return fmt.Errorf("store must be %q or %q, got %q", appconfig.StoreMemory, appconfig.StorePostgres, store)
	}

	return nil
}

func validateInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	return nil
}
