package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/vanshshar/QuizMaster/internal/config"
	"github.com/vanshshar/QuizMaster/internal/infra/sqlite"
	sqlitemigrations "github.com/vanshshar/QuizMaster/internal/infra/sqlite/migrations"
)

// NewMigrateCmd applies the store schema migrations. `play` and friends do
// this implicitly; the command exists for provisioning a database up front.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply store schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Store.Backend != config.BackendSQLite {
		return fmt.Errorf("migrations only apply to the sqlite store, configured backend is %q", cfg.Store.Backend)
	}

	db, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := applyMigrations(ctx, db); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}

func applyMigrations(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, sqlitemigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	_, err := migrator.Migrate(ctx)
	return err
}
