package commands

import (
	"log/slog"

	"github.com/auditforge/auditforge/database"
	"github.com/auditforge/auditforge/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrate.AddCommand(newMigrateUpCommand())
	migrate.AddCommand(newMigrateDownCommand())
	migrate.AddCommand(newMigrateVersionCommand())
	return &migrate
}

func newMigrateUpCommand() *cobra.Command {
	up := cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}
			slog.Info("migrations applied")
		},
	}

	return &up
}

func newMigrateDownCommand() *cobra.Command {
	down := cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RollbackMigrationWithDB(db); err != nil {
				slog.Error("could not roll back migration", "err", err)
				return
			}
			slog.Info("migration rolled back")
		},
	}

	return &down
}

func newMigrateVersionCommand() *cobra.Command {
	version := cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			ver, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				slog.Error("could not read migration version", "err", err)
				return
			}
			slog.Info("migration version", "version", ver, "dirty", dirty)
		},
	}

	return &version
}
