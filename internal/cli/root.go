// Package cli implements the yijing CLI commands.
package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/config"
	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/divination"
	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/store"
)

var (
	dbPath     string
	formatFlag string
	configPath string
	envFile    string
	verbose    bool

	cfg    = defaultConfig()
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "yijing",
	Short: "Zhouyi reference, divination and study tracker",
	Long: `A small CLI around the Book of Changes: browse and search the 64 hexagrams,
cast readings by the quick, coin or consult methods, and track study progress.
All state lives in one local SQLite file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if formatFlag != "json" && formatFlag != "text" {
			return fmt.Errorf("--format must be json or text, got %q", formatFlag)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		c, err := config.Load(path, envFile)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.DB = dbPath
		}
		cfg = c

		level := c.LogLevel
		if verbose {
			level = "debug"
		}
		l, err := newLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $YIJING_DB or ~/.yijing/yijing.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.yijing/config.toml)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
}

func defaultConfig() *config.Config {
	c := config.Defaults()
	return &c
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}

func openStores() (*store.Stores, error) {
	kvs, err := kv.NewSQLite(cfg.DB)
	if err != nil {
		return nil, err
	}
	return store.Open(kvs, store.Options{Logger: logger}), nil
}

func newDiviner(stores *store.Stores) *divination.Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var interp divination.Interpreter
	if cfg.OpenAI.Enabled() {
		interp = divination.NewOpenAIInterpreter(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		logger.Debug("using remote interpreter", zap.String("model", cfg.OpenAI.Model))
	} else {
		interp = divination.NewTemplateInterpreter(rng, cfg.ConsultDelay)
	}
	return divination.New(corpus.Default(), stores, divination.Options{
		Rand:        rng,
		Interpreter: interp,
		Logger:      logger,
	})
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
