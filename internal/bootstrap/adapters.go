package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickplate/ui-gate/config"
	"github.com/quickplate/ui-gate/internal/adapters/cookiecred"
	redisadapter "github.com/quickplate/ui-gate/internal/adapters/redis"
	"github.com/quickplate/ui-gate/internal/adapters/sessioncred"
	"github.com/quickplate/ui-gate/internal/domain/gate"
	"github.com/quickplate/ui-gate/internal/ports"
)

// ConnectRedis creates and pings a Redis client for the session credential
// mode.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			return nil, fmt.Errorf("ping redis at %s: %w (close: %v)", cfg.Addr, err, cerr)
		}
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// CredentialSourceConfig groups the dependencies for BuildCredentialSource.
type CredentialSourceConfig struct {
	Gate        config.GateConfig
	Redis       config.RedisConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildCredentialSource picks the credential source for the configured mode.
// The session mode requires a connected Redis client; the cookie mode needs
// nothing beyond the cookie names.
//
//nolint:ireturn // callers program against the CredentialSource port.
func BuildCredentialSource(cfg CredentialSourceConfig) (ports.CredentialSource, error) {
	switch cfg.Gate.Mode {
	case config.CredentialModeCookie:
		return cookiecred.New(cfg.Gate.TokenCookie, cfg.Gate.RoleCookie), nil

	case config.CredentialModeSession:
		if cfg.RedisClient == nil {
			return nil, fmt.Errorf("credential mode %q requires a redis client", cfg.Gate.Mode)
		}
		store := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, cfg.Redis.KeyPrefix)
		return sessioncred.New(store, cfg.Gate.TokenCookie, cfg.Logger), nil

	default:
		return nil, fmt.Errorf("unknown credential mode %q", cfg.Gate.Mode)
	}
}

// BuildRouteTable folds deployment-specific extra routes from configuration
// into the built-in table.
func BuildRouteTable(cfg config.GateConfig) gate.RouteTable {
	return gate.DefaultRouteTable().WithExtraRoutes(cfg.ExtraPublic, cfg.ExtraExcluded)
}
