package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/internal/protogen"
	"github.com/KotFed0t/invest_contracts/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()

	setupLogger(cfg)

	ctx := utils.CtxWithRqID(context.Background())

	if err := protogen.Run(ctx, cfg.Protogen); err != nil {
		slog.Error("protobuf generation failed", slog.String("err", err.Error()))
		return 1
	}
	return 0
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
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
