package main

import (
	"context"
	"log/slog"
	"os"

	"authkit/internal/client/cli"
	"authkit/internal/client/config"
	"authkit/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "exited with error", "error", err)
		os.Exit(1)
	}
}
