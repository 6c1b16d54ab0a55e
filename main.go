package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"imgdrop/internal/app"
	"imgdrop/internal/config"
	"imgdrop/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := utils.NewLogger(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	utils.LoadEnv(logger)

	cfg := config.LoadConfig()

	// .env may have switched the environment.
	if cfg.Env != os.Getenv("ENV") {
		if l, err := utils.NewLogger(cfg.Env); err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	logger.Debug("Config loaded",
		zap.String("api_gateway_url", cfg.APIGatewayURL),
		zap.Bool("history_enabled", cfg.HistoryEnabled()),
		zap.Bool("preview_enabled", cfg.PreviewEnabled),
		zap.String("env", cfg.Env),
	)

	application, err := app.Bootstrap(&cfg, logger, os.Stdout)
	if err != nil {
		logger.Error("Failed to bootstrap application", zap.Error(err))
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Router.Serve(ctx, os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return exitErr.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
