package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"klaxon/internal/config"
	"klaxon/internal/daemon"
	"klaxon/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.FromEnv()
	logger.Init(cfg.LogLevel)

	d := daemon.New(cfg)

	// run daemon in background
	go func() {
		if err := d.Run(ctx); err != nil {
			log := logger.WithError(err)
			log.Error().Msg("daemon exited")
			cancel()
		}
	}()

	// wait for termination signals
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		logger.Logger.Info().Msg("shutting down")
		cancel()
	case <-ctx.Done():
	}

	// give graceful shutdown some time
	time.Sleep(500 * time.Millisecond)
	logger.Logger.Info().Msg("exited")
}
