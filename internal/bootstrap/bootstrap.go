package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-mcp-server/internal/config"
	"weather-mcp-server/internal/infrastructure/openweather"
	"weather-mcp-server/internal/logger"
	"weather-mcp-server/internal/server"
	"weather-mcp-server/internal/services"
)

// Bootstrap wires configuration, the upstream client, the weather
// service and the MCP server together and runs the selected transport.
type Bootstrap struct {
	config *config.Config
	logger logger.Logger
}

func NewBootstrap() (*Bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.App.LogLevel, cfg.App.Env).WithField("service", cfg.App.Name)

	return &Bootstrap{
		config: cfg,
		logger: log,
	}, nil
}

func (b *Bootstrap) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		b.logger.Infof("Received signal %v, shutting down", sig)
		cancel()
	}()

	client := openweather.NewClient(
		b.config.OpenWeather.BaseURL,
		b.config.OpenWeather.APIKey,
		b.config.OpenWeather.LookupTimeout,
		b.config.OpenWeather.SearchTimeout,
	)
	provider := services.NewWeatherService(client)
	srv := server.New(provider, b.logger)

	if b.config.Server.Mode == config.ModeHTTP {
		return b.runHTTP(ctx, srv)
	}

	return b.runStdio(ctx, srv)
}

func (b *Bootstrap) runStdio(ctx context.Context, srv *server.Server) error {
	err := srv.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (b *Bootstrap) runHTTP(ctx context.Context, srv *server.Server) error {
	httpServer := &http.Server{
		Addr:    b.config.Server.HTTPAddr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		b.logger.Infof("Serving MCP over HTTP on %s", b.config.Server.HTTPAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
