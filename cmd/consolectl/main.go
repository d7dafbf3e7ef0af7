package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/app/consoleapp"
	"github.com/tarekmagdym/MasterStack/internal/config"
	"github.com/tarekmagdym/MasterStack/internal/infra/logger"
)

func main() {
	cfgPath := os.Getenv("CONSOLE_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/console.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := consoleapp.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("create console app", zap.Error(err))
	}
	defer func() {
		_ = app.Close()
	}()

	if err := execute(ctx, app); err != nil {
		os.Exit(1)
	}
}
