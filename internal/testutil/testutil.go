// Package testutil provides shared helpers for integration-style tests.
package testutil

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is the subset of testing.TB the helpers need.
type TestingTB interface {
	Helper()
	Skipf(format string, args ...any)
	Cleanup(func())
}

// SetupTestRedis creates a Redis client for tests, skipping the test when no
// Redis server is reachable. The test database is flushed on cleanup, so
// tests must not point TEST_REDIS_ADDR at a shared instance.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 15 // keep test keys away from any local dev data

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis not available at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}
