package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/imgkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/imgkeeper/internal/cli"
	"github.com/dmitrijs2005/imgkeeper/internal/config"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
	"github.com/dmitrijs2005/imgkeeper/internal/upload"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	store, err := storage.Open(ctx, cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	provider, err := upload.NewProvider(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger, store, provider)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
