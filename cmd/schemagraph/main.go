// Command schemagraph turns transcripts into typed topic graphs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core"
	"github.com/agenthands/schemagraph/internal/driver"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config

	// Swapped in tests.
	newLLM    = llm.NewClient
	newDriver = func(ctx context.Context, c config.MemgraphConfig, log *zap.Logger) (driver.GraphDriver, error) {
		return driver.NewMemgraphDriver(ctx, c.URI, c.User, c.Password, log)
	}
)

var rootCmd = &cobra.Command{
	Use:   "schemagraph",
	Short: "Turn long-form transcripts into typed topic graphs",
	Long: `schemagraph segments a transcript into topics, classifies each topic into
one of five discourse schemas, extracts a node/connection graph restricted to
that schema's vocabulary and filters it into the final artifact.

Stages can be run one at a time (topics, structure, filter, regenerate) or
all together (run).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger == nil {
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}

		path := configPath
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		return cfg.ApplyEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(topicsCmd, structureCmd, filterCmd, regenerateCmd, runCmd, exportCmd, taxonomyCmd)
}

// newPipeline validates the oracle settings and builds the pipeline.
func newPipeline(ctx context.Context) (*core.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := newLLM(ctx, cfg.LLM, logger.Named("llm"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return core.NewPipeline(client, cfg, logger), nil
}

// arg returns args[i], or def when it was not given.
func arg(args []string, i int, def string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return def
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
