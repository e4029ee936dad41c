package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/config"
	"github.com/fleet-logistics-service/internal/pkg/logger"
	"github.com/fleet-logistics-service/internal/repository/postgres"
)

var strict bool

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fleet reference data from CSV files",
	Long: `seed imports tugboats and orders from CSV files into PostgreSQL.

Rows are parsed exactly like the API upload endpoints. Unparseable numeric
and date cells become zero and are reported, unless --strict is set, in
which case the whole file is rejected.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject the whole file on any unparseable value (overrides IMPORT_STRICT)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env - общие зависимости подкоманд
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *postgres.DB
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.log.Error("Failed to close PostgreSQL connection", zap.Error(err))
	}
	_ = e.log.Sync()
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("strict") {
		cfg.Import.Strict = strict
	}

	log, err := logger.New(cfg.Log.Level, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &env{cfg: cfg, log: log, db: db}, nil
}
