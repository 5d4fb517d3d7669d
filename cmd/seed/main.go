package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/streetdogs/backend/internal/config"
	"github.com/streetdogs/backend/internal/logging"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/internal/seed"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: seed [flags] [command]

Commands:
  reset       既存のワンちゃんを全削除してから投入 (default)
  append      既存データを残したまま追加

Flags:`)
		flag.PrintDefaults()
	}
	n := flag.Int("n", seed.DefaultCount, "number of dogs to insert")
	randSeed := flag.Int64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	if *n < 0 {
		fmt.Fprintf(os.Stderr, "seed: -n must not be negative (got %d)\n", *n)
		flag.Usage()
		os.Exit(2)
	}
	mode, err := seed.ParseMode(flag.Arg(0))
	if err != nil {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := repository.Open(ctx, cfg.StoreURI())
	if err != nil {
		logging.Fatal("failed to connect to store", "error", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	dogs := seed.Dogs(gofakeit.New(*randSeed), *n, time.Now().UTC())
	if err := seed.Run(ctx, store.Dogs, mode, dogs); err != nil {
		logging.Fatal("seed failed", "error", err)
	}
	slog.Info("dogs inserted", "count", len(dogs), "mode", mode, "backend", store.Backend)
}
