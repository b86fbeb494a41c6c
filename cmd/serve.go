package main

import (
	"context"
	"cordely/internal/api"
	"cordely/internal/api/handler/v1handler"
	"cordely/internal/billing"
	"cordely/internal/catalog"
	"cordely/internal/config"
	"cordely/internal/orders"
	"cordely/internal/sites"
	"cordely/internal/worker"
	"cordely/pkg/describe/openaiapi"
	"cordely/pkg/logger"
	"cordely/pkg/push/fcm"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cordely/pkg/payment/stripeapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

const (
	pushClientTimeout = 10 * time.Second
	// completions take noticeably longer than a push send
	describeClientTimeout = 30 * time.Second
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
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			payments, err := stripeapi.New(cfg.Stripe.APIKey)
			if err != nil {
				logger.Fatal(ctx, "could not create stripe client", zap.Error(err))
			}
			notifier := fcm.New(&http.Client{Timeout: pushClientTimeout},
				cfg.Push.Endpoint,
				cfg.Push.ServerKey)
			generator, err := openaiapi.New(&http.Client{Timeout: describeClientTimeout},
				cfg.OpenAI.APIKey,
				cfg.OpenAI.Model)
			if err != nil {
				logger.Fatal(ctx, "could not create openai client", zap.Error(err))
			}

			ordersService := orders.New(strg, orders.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, ordersService, notifier, worker.NewNotifierOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			jobsUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/admin/jobs",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create jobs dashboard", zap.Error(err))
			}
			if err := jobsUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start jobs dashboard", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Biller:  billing.New(strg, payments, billing.NewOptions(cfg)),
					Catalog: catalog.New(strg, generator),
					Orders:  ordersService,
					Sites:   sites.New(strg),
				},
				JobsUI: jobsUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
