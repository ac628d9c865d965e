// Command geyser-fanout runs the dispatch core as a standalone gRPC
// process: load configuration, start the service, and block until an OS
// signal requests shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"geyserfanout/internal/config"
	"geyserfanout/internal/logging"
	"geyserfanout/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize structured logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	svc, err := service.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to construct service", logging.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutdown signal received")
		svc.Shutdown(context.Background())
	}()

	logger.Info("geyser fan-out listening",
		logging.String("addr", cfg.Addr),
		logging.String("admin_addr", cfg.AdminAddr),
	)

	if err := svc.Serve(); err != nil {
		logger.Fatal("service terminated", logging.Error(err))
	}
}
