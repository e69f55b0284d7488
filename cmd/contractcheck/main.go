package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/internal/externalApi/investApi"
	"github.com/KotFed0t/invest_contracts/internal/reportGenerator/xslsxGenerator"
	"github.com/KotFed0t/invest_contracts/internal/scheduler"
	"github.com/KotFed0t/invest_contracts/internal/service/driftService"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("drift", cfg.Drift), slog.Any("protogen", cfg.Protogen))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	investApiClient := investApi.New(cfg)

	reportGenerator := xslsxGenerator.New()

	driftSrv := driftService.New(cfg, investApiClient, reportGenerator)

	if !cfg.Drift.Watch {
		if err := driftSrv.RunChecks(ctx); err != nil {
			slog.Error("contract check failed", slog.String("err", err.Error()))
			return 1
		}
		return 0
	}

	sched := scheduler.New()

	var err error
	if cfg.Drift.CheckCrontab != "" {
		err = sched.NewCrontabJob("contract drift check", driftSrv.RunChecks, cfg.Drift.CheckCrontab, true)
	} else {
		err = sched.NewIntervalJob("contract drift check", driftSrv.RunChecks, cfg.Drift.CheckInterval, true)
	}
	if err != nil {
		slog.Error("failed to schedule contract check", slog.String("err", err.Error()))
		return 1
	}

	sched.Start()
	defer sched.Stop()

	// Waiting interruption signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-interrupt

	return 0
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
