// Package main provides the mirrorbot CLI. The serve subcommand runs the
// HTTP service and background workers; migrate, jwt and rewrite are
// operational helpers.
package main

import (
	"context"
	"flag"
	"log"
	"mirrorbot/internal/config"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/storage/postgres"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig parses the -c flag with the standard flag package and loads the
// configuration file it names. Cobra only exposes flag values once a
// subcommand runs, which is too late: the config feeds subcommand
// construction. The persistent flag exists only so cobra accepts -c.
func loadConfig(rootCmd *cobra.Command) *config.Config {
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	return cfg
}

// getPostgres connects the storage layer and returns it with a cleanup
// function that closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	strg, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		SslMode:            cfg.Database.SslMode,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
	}

	return strg, func() {
		logger.Info(ctx, "closing postgres pool")
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres pool", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use: "mirrorbot",
	}

	cfg := loadConfig(rootCmd)
	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "exiting on panic", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		jwtCommand(cfg),
		rewriteCommand(cfg),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
