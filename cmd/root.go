package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/config"
	"github.com/winterarc/winterarc/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "winterarc",
	Short: "Workout plan generator for the terminal",
	Long:  "WinterArc builds a workout from a workout type, target muscle groups and a training goal, then tracks your sets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/winterarc/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WINTERARC_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to exercise catalog YAML (overrides config)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to log file (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs: configuration, a logger and the
// exercise catalog.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *catalog.Catalog
	// catalogFromFile is false when the embedded catalog is in use.
	catalogFromFile bool
	logFile         io.Closer
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.Catalog.Path = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.Log.File = p
	}

	e := &env{cfg: cfg}
	e.log, e.logFile = openLogger(cfg)

	e.catalog, e.catalogFromFile, err = catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}
	e.log.Debug("catalog loaded",
		"version", e.catalog.Version(),
		"path", cfg.Catalog.Path,
		"from_file", e.catalogFromFile)
	return e, nil
}

func (e *env) Close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// catalogStatus describes the catalog in use for the TUI header.
func (e *env) catalogStatus() string {
	if e.catalogFromFile {
		return "catalog " + e.catalog.Version()
	}
	return "catalog " + e.catalog.Version() + " (built-in)"
}

// openLogger writes logs to the configured file; the TUI owns stdout. Logs
// are discarded when the file cannot be opened.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return slog.New(slog.DiscardHandler), nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return slog.New(slog.DiscardHandler), nil
	}
	return slog.New(slog.NewTextHandler(f, opts)), f
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then WINTERARC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, e *env) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, e.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.log.Debug("store opened", "path", dbPath)
	return st, nil
}
