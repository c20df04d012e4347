package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talkincode/latencyglobe/config"
	"github.com/talkincode/latencyglobe/internal/app"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfile = flag.String("c", "latencyglobe.yml", "config file")
	debug = flag.Bool("d", false, "debug mode")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*cfile)
	if *debug {
		cfg.System.Debug = true
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application.StartBackgroundJobs(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return application.WebServer().Start()
	})

	g.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigs:
			zap.L().Info("shutdown signal received", zap.String("signal", sig.String()))
		case <-ctx.Done():
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return application.WebServer().Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
