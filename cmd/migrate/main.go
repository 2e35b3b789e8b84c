package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sterlinglegal/backend/internal/config"
	"github.com/sterlinglegal/backend/internal/logging"
	"github.com/sterlinglegal/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  未適用のマイグレーションを適用
  down          直近のマイグレーションを 1 つ戻す
  reset         全マイグレーションを戻す
  fresh         全マイグレーションを戻してから全て適用
  status        適用状況を表示`)
	os.Exit(1)
}

func main() {
	logging.Setup(os.Getenv("LOG_LEVEL"))

	var cfg repository.Config
	if err := config.Load(&cfg); err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	cmd := repository.MigrateUp
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool, cfg, cmd, slog.Default()); err != nil {
		pool.Close()
		if errors.Is(err, repository.ErrUnknownMigrateCommand) {
			usage()
		}
		logging.Fatal("migration failed", "command", cmd, "error", err)
	}
	slog.Info("migration finished", "command", cmd)
}
