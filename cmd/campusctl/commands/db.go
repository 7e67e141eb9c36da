package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrationsPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.CloseDB()

		path := migrationsPath
		if path == "" {
			path = cfg.MigrationsPath
		}

		if err := db.RunMigrations(cmd.Context(), path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "миграции применены")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default departments",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.CloseDB()

		if err := db.SeedDepartments(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "кафедры добавлены")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsPath, "file", "", "Migration file (defaults to MIGRATIONS_PATH)")
}
