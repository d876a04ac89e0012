package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core"
	"github.com/agenthands/paraphrase/internal/llm"
	"github.com/agenthands/paraphrase/internal/logging"
	"github.com/agenthands/paraphrase/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	logging.Setup(cfg.Log.Level)
	if envErr != nil {
		slog.Debug("no .env file found, using environment and config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The model client is built once and shared by every request.
	sampler, err := llm.NewSampler(ctx, cfg.LLM, cfg.Generation)
	if err != nil {
		return err
	}
	if closer, ok := sampler.(io.Closer); ok {
		defer closer.Close()
	}

	slog.Info("model provider ready",
		"provider", sampler.Name(),
		"model", cfg.LLM.Model,
		"maxConcurrency", cfg.LLM.MaxConcurrency,
		"maxOutputs", cfg.Generation.MaxOutputs,
	)

	srv := server.NewServer(core.NewParaphraser(sampler, cfg), cfg)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
