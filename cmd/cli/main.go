package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/cli"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/config"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
