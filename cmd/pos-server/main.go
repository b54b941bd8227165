package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvergaraz/puntoventa/internal/config"
	"github.com/mvergaraz/puntoventa/internal/http"
	"github.com/mvergaraz/puntoventa/internal/log"
	"github.com/mvergaraz/puntoventa/internal/service"
	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running pos server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Storage config.Storage
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	store, err := jsonfile.New(cfg.Storage.File)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}

	productService := service.NewProductService(store)
	customerService := service.NewCustomerService(store)
	saleService := service.NewSaleService(store)
	reportService := service.NewReportService(store)

	svc := http.New(cfg.HTTP, logger, productService, customerService, saleService, reportService)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started",
		slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)),
		slog.String("database_file", cfg.Storage.File))

	<-ctx.Done()

	logger.InfoContext(ctx, "http service is shutting down")

	shutdownCtx := context.Background()
	if err := cleanup(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http service: %w", err)
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
