package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanverite/countdownd/internal/api"
	"github.com/sanverite/countdownd/internal/config"
	"github.com/sanverite/countdownd/internal/core"
)

func main() {
	var (
		addr         = flag.String("listen", "", "HTTP listen address (overrides config file)")
		configPath   = flag.String("config", "", "path to YAML config file")
		shutdownSecs = flag.Int("shutdown-secs", 0, "graceful shutdown timeout in seconds (overrides config file)")
	)
	flag.Parse()

	logger := log.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("timerd: %v", err)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *shutdownSecs > 0 {
		cfg.ShutdownTimeoutSecs = *shutdownSecs
	}

	// The one timer instance for this process, ticking in the background.
	engine := core.NewEngine(core.EngineOptions{TickInterval: cfg.TickInterval()})
	if err := engine.Run(context.Background()); err != nil {
		logger.Fatalf("timerd: start ticker: %v", err)
	}

	srv := api.NewServer(engine, api.ServerOptions{
		Addr:              cfg.Listen,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSecs) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSecs) * time.Second,
		ShutdownTimeout:   time.Duration(cfg.ShutdownTimeoutSecs) * time.Second,
		Logger:            logger,
	})
	srv.Start()

	// Handle shutdown signals
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	sig := <-signals
	logger.Printf("timerd: received signal %v, shutting down", sig)

	ctx := context.Background()
	if err := srv.Stop(ctx); err != nil {
		logger.Printf("timerd: graceful shutdown error: %v", err)
	}
	if err := engine.Shutdown(ctx); err != nil {
		logger.Printf("timerd: ticker shutdown error: %v", err)
	}
	logger.Printf("timerd: stopped")
}
