package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/quickplate/ui-gate/config"
	"github.com/quickplate/ui-gate/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	upstream, err := bootstrap.ValidateConfig(&cfg)
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	sourceCfg := bootstrap.CredentialSourceConfig{
		Gate:   cfg.Gate,
		Redis:  cfg.Redis,
		Logger: logger,
	}
	if cfg.Gate.Mode == config.CredentialModeSession {
		client, rerr := bootstrap.ConnectRedis(ctx, cfg.Redis)
		if rerr != nil {
			return fmt.Errorf("connect redis: %w", rerr)
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		sourceCfg.RedisClient = client
	}

	source, err := bootstrap.BuildCredentialSource(sourceCfg)
	if err != nil {
		return err
	}

	server := bootstrap.BuildHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Source:   source,
		Upstream: upstream,
		Logger:   logger,
	})

	return bootstrap.RunHTTPServer(ctx, server, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting ui-gate",
		"addr", cfg.HTTP.Addr,
		"upstream", cfg.HTTP.UpstreamURL,
		"credential_mode", cfg.Gate.Mode,
		"dev", cfg.IsDev,
	)
}
