// Package bootstrap wires up runtime dependencies shared by the server and
// auxiliary commands.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"ideaboard/internal/config"
	"ideaboard/internal/database"
	"ideaboard/internal/middleware"
	"ideaboard/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDevData populates the database with fake data. Ignored in
	// production.
	SeedDevData bool
}

// InitRuntime connects to the database and Redis and optionally seeds
// development data. An unreachable Redis yields a nil client rather than an
// error; the rate limiter fails open without it.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	rdb := connectRedis(cfg.RedisURL)

	if opts.SeedDevData && !cfg.IsProduction() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.Run(ctx, db, seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed development data: %w", err)
		}
		middleware.Logger.Info("Development data seeded")
	}

	return db, rdb, nil
}

func connectRedis(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, rate limiting disabled",
			"addr", addr, "error", err.Error())
		_ = rdb.Close()
		return nil
	}

	middleware.Logger.Info("Redis connected successfully")
	return rdb
}
