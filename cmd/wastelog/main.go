package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wastelabs/wastelog/internal/config"
	"github.com/wastelabs/wastelog/internal/db"
	"github.com/wastelabs/wastelog/internal/db/migrations"
	"github.com/wastelabs/wastelog/internal/dbpool"
	"github.com/wastelabs/wastelog/internal/domain"
	"github.com/wastelabs/wastelog/internal/service"
	"github.com/wastelabs/wastelog/internal/store"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	flagDB  string
	flagFmt string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("wastelog version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("wastelog version %s-dev", config.Version)
}

// configFile is the on-disk shape of ~/.wastelog/config.yaml.
type configFile struct {
	DatabaseURL string  `yaml:"database_url"`
	CapacityKG  float64 `yaml:"capacity_kg"`
	Businesses  string  `yaml:"businesses"`
	Streams     string  `yaml:"streams"`
	LogLevel    string  `yaml:"log_level"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "wastelog",
		Short:        "Wastelog — chemical waste disposal ledger",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDB, "database-url", "", "Postgres URL (env: DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: table|json|quiet")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the wired core for one command invocation.
type app struct {
	cfg     *config.Config
	pool    *dbpool.Pool
	log     *logrus.Logger
	entries domain.EntryService
	audit   domain.AuditService
}

// openApp resolves configuration, connects, migrates, and wires the
// stores and services. Callers must defer close.
func openApp(ctx context.Context) (*app, error) {
	resolveConfig()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, _ := logrus.ParseLevel(cfg.LogLevel) //nolint:errcheck // validated by config.Load.
	log.SetLevel(level)

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		pool.Close()
		return nil, err
	}

	base := store.Base{Pool: pool, Log: log}

	return &app{
		cfg:     cfg,
		pool:    pool,
		log:     log,
		entries: service.NewEntryService(store.NewEntryStore(base), cfg, log),
		audit:   service.NewAuditService(store.NewAuditStore(base), log),
	}, nil
}

func (a *app) close() {
	a.pool.Close()
}

// resolveConfig layers settings: flags beat env, env beats the config
// file. Winners land in env so config.Load sees one consistent view.
func resolveConfig() {
	if flagDB != "" {
		os.Setenv("DATABASE_URL", flagDB) //nolint:errcheck // Setenv cannot fail here.
	}

	cfgPath, err := configPath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}

	setEnvDefault("DATABASE_URL", cfg.DatabaseURL)
	if cfg.CapacityKG != 0 {
		setEnvDefault("WASTELOG_CAPACITY_KG", fmt.Sprintf("%g", cfg.CapacityKG))
	}
	setEnvDefault("WASTELOG_BUSINESSES", cfg.Businesses)
	setEnvDefault("WASTELOG_STREAMS", cfg.Streams)
	setEnvDefault("LOG_LEVEL", cfg.LogLevel)
}

func setEnvDefault(key, value string) {
	if value != "" && os.Getenv(key) == "" {
		os.Setenv(key, value) //nolint:errcheck // Setenv cannot fail here.
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wastelog", "config.yaml"), nil
}
