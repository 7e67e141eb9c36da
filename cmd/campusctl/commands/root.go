package commands

import (
	"context"
	"fmt"
	"os"

	"campusfeed/internal/config"
	"campusfeed/internal/database"
	"campusfeed/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Administrative tasks for the campus feed",
	Long: `campusctl applies the schema, seeds reference data and issues
bearer tokens for local development. Settings are read from the
same environment variables and .env file as the API server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadConfig()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, newTokenCmd())
}

// openDB connects without applying migrations so each command controls its own step.
func openDB(ctx context.Context) (*database.DB, *zap.Logger, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	conn, err := sqlx.ConnectContext(ctx, "postgres", database.DSN(cfg.DB))
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	return database.New(conn, log), log, nil
}
