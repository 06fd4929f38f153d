package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/urfave/cli/v3"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App
	Watch
	Store
	PostgreSQL
	HTTP
}

type App struct {
	PreviewRows int          `validate:"gt=0"`
	ChartRows   int          `validate:"gt=0"`
	Theme       domain.Theme `validate:"oneof=light dark"`
}

// Watch configures the inbox pipeline. It is disabled while InboxDirectory is empty.
type Watch struct {
	InboxDirectory   string
	OutboxDirectory  string
	ReportsDirectory string
	ScanInterval     time.Duration `validate:"gt=0"`
	Options          domain.CleaningOptions
}

func (w Watch) Enabled() bool {
	return w.InboxDirectory != ""
}

type Store struct {
	Driver string `validate:"oneof=memory postgres"`
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32 `validate:"gte=0"`
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64 `validate:"gt=0"`
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			PreviewRows: int(cmd.Int("preview-rows")),
			ChartRows:   int(cmd.Int("chart-rows")),
			Theme:       domain.Theme(cmd.String("theme")),
		},
		Watch: Watch{
			InboxDirectory:   cmd.String("inbox-dir"),
			OutboxDirectory:  cmd.String("outbox-dir"),
			ReportsDirectory: cmd.String("reports-dir"),
			ScanInterval:     cmd.Duration("scan-interval"),
			Options: domain.CleaningOptions{
				DropDuplicates: cmd.Bool("watch-drop-duplicates"),
				FillMissing:    cmd.Bool("watch-fill-missing"),
				Chart:          cmd.String("reports-dir") != "",
				Format:         domain.Format(cmd.String("watch-format")),
			},
		},
		Store: Store{
			Driver: cmd.String("store"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: int64(cmd.Int("http-max-upload-size")) << 20,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Store.Driver == StorePostgres && (c.PostgreSQL.Username == "" || c.PostgreSQL.DBName == "") {
		return errors.New("invalid config: postgres store requires pg-username and pg-dbname")
	}

	if c.Watch.Enabled() && c.Watch.Options.Format != "" && c.Watch.OutboxDirectory == "" {
		return errors.New("invalid config: watch export requires outbox-dir")
	}

	if c.Watch.Enabled() {
		for _, d := range []struct{ flag, dir string }{
			{"outbox-dir", c.Watch.OutboxDirectory},
			{"reports-dir", c.Watch.ReportsDirectory},
		} {
			if d.dir != "" && sameDirectory(c.Watch.InboxDirectory, d.dir) {
				return fmt.Errorf("invalid config: %s must differ from inbox-dir", d.flag)
			}
		}
	}

	return nil
}

func sameDirectory(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
