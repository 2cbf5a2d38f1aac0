package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/suar-net/bestsellers-gw/internal/config"
	"github.com/suar-net/bestsellers-gw/internal/handler"
	"github.com/suar-net/bestsellers-gw/internal/logger"
	"github.com/suar-net/bestsellers-gw/internal/metrics"
	"github.com/suar-net/bestsellers-gw/internal/service"
)

const shutdownTimeout = 5 * time.Second

func serve(ctx context.Context, cfgPath string) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	m := metrics.New()
	gateway, err := service.NewGateway(cfg.Upstream,
		service.WithLogger(log.Named("gateway")),
		service.WithMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("failed to create upstream gateway: %w", err)
	}

	router := handler.SetupRouter(cfg.Server, gateway, m, log.Named("http"))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("route_prefix", cfg.Server.RoutePrefix),
			zap.String("upstream", cfg.Upstream.BaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("cannot run server on port %s: %w", cfg.Server.Port, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server successfully shut down")
	return nil
}
