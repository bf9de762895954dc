package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/khelan-mehta/cookie/internal/components"
	"github.com/khelan-mehta/cookie/internal/config"
)

func Run() error {
	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(appCtx)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}

	logger := components.SetupLogger(cfg.Env)
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
			return err
		}
		logger.Info("http server stopped")
		return nil
	})

	g.Go(func() error {
		if err := comps.Dispatcher.Run(ctx); err != nil {
			logger.Error("dispatch worker failed", "err", err)
			return err
		}
		logger.Info("dispatch worker stopped")
		return nil
	})

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", "signal", sig.String())
	case <-ctx.Done():
		logger.Error("component failed, initiating shutdown")
	}

	stop()
	if err := g.Wait(); err != nil {
		logger.Error("shutdown finished with error", "err", err)
	}

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down the servers")

	return nil
}
