package main

import (
	"context"
	"errors"
	"log/slog"
	"mirrorbot/internal/alerts"
	"mirrorbot/internal/api"
	"mirrorbot/internal/api/handler/v1handler"
	"mirrorbot/internal/config"
	"mirrorbot/internal/rewrite"
	"mirrorbot/internal/worker"
	"mirrorbot/pkg/alertfeed/qfes"
	"mirrorbot/pkg/logger"
	"mirrorbot/pkg/mattermost/webhook"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"golang.org/x/time/rate"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			poster := webhook.New(&http.Client{Timeout: cfg.Webhook.Timeout},
				cfg.Webhook.URL,
				rate.NewLimiter(rate.Limit(cfg.Webhook.RatePerSecond), cfg.Webhook.Burst))
			feed := qfes.New(&http.Client{Timeout: cfg.Feed.Timeout}, cfg.Feed.URL)
			service := alerts.New(strg, feed, poster, alerts.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, service, cfg.Alerts.SweepInterval)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			riverUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/riverui",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create river UI", zap.Error(err))
			}
			if err := riverUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start river UI", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Alerts:   service,
					Rewriter: rewrite.New(rewriteRules(cfg)),
				},
				RiverUI: riverUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop river queue client", zap.Error(err))
			}
		},
	}

	return cmd
}
