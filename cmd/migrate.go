package main

import (
	"context"
	"database/sql"
	root "mirrorbot"
	"mirrorbot/internal/config"
	"mirrorbot/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand. It brings the incident
// schema and the river queue schema up to date in one run.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies all pending database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			migrateSchema(ctx, db)
			migrateQueue(ctx, db)
		},
	}
}

// migrateSchema applies the goose migrations embedded in the root package.
func migrateSchema(ctx context.Context, db *sql.DB) {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
	}
	if err := goose.Up(db, "migrations"); err != nil {
		logger.Fatal(ctx, "could not migrate incident schema", zap.Error(err))
	}
}

// migrateQueue applies river's own migrations. Migrate is a no-op when the
// queue schema is already current.
func migrateQueue(ctx context.Context, db *sql.DB) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		logger.Fatal(ctx, "could not migrate river queue schema", zap.Error(err))
	}
}
