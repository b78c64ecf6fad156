package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	_ "voting-dashboard/docs"
	"voting-dashboard/internal/config"
	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/domain/intake"
	api "voting-dashboard/internal/http"
	"voting-dashboard/internal/metrics"
	"voting-dashboard/internal/platform/logging"
	"voting-dashboard/internal/retry"
	"voting-dashboard/internal/worker"
)

// @title           Live Voting Dashboard API
// @version         1.0
// @description     In-memory ballot with live vote counts, percentages and a current leader
// @BasePath        /api/v1
func main() {
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	api.SetLogger(logger)
	metrics.Register()

	events := make(chan worker.Event, cfg.EventBuffer)
	publisher := worker.NewPublisher(events)

	sinks := []worker.Sink{worker.NewLogSink(logger)}
	if cfg.WebhookURL != "" {
		sinks = append(sinks, worker.NewWebhookSink(cfg.WebhookURL, nil, retry.Policy{
			Attempts:  cfg.WebhookAttempts,
			BaseDelay: 200 * time.Millisecond,
			MaxDelay:  5 * time.Second,
		}))
	}
	notifier := worker.NewNotificationWorker(events, logger, sinks...)

	store := ballot.NewStore(ballot.WithNotifier(publisher))
	intakeSvc := intake.NewService(store, publisher)
	if err := metrics.RegisterBallot(prometheus.DefaultRegisterer, store.TotalVotes, store.Len); err != nil {
		logger.Error("register ballot metrics", "error", err.Error())
		os.Exit(1)
	}

	router := api.NewRouter(store, intakeSvc, api.VoteLimit{
		Rate:  rate.Every(time.Minute / time.Duration(max(cfg.VotesPerMinute, 1))),
		Burst: cfg.VoteBurst,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ballot streams only end when their request context does.
	serveCtx, cancelServe := context.WithCancel(ctx)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return serveCtx },
	}
	srv.RegisterOnShutdown(cancelServe)

	go notifier.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen error", "error", err.Error())
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err.Error())
	}
	cancel()

	logger.Info("server stopped")
}
