package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/market-names/internal/catalog"
	"github.com/preston-bernstein/market-names/internal/config"
	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/providers/fixture"
	"github.com/preston-bernstein/market-names/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "market-names"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	exportOnly := flag.Bool("export-catalog", false, "write the built-in fixture catalog to CATALOG_PATH and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *exportOnly {
		if err := catalog.Export(ctx, fixture.New(), catalog.NewWriter(cfg.Catalog.Path), cfg.Catalog.Locales); err != nil {
			logging.Error(logger, "catalog export failed", err)
			stop()
			os.Exit(1)
		}
		logging.Info(logger, "catalog exported", "path", cfg.Catalog.Path)
		return
	}

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
