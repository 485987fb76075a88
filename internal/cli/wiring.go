package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vanshshar/QuizMaster/internal/app"
	"github.com/vanshshar/QuizMaster/internal/config"
	"github.com/vanshshar/QuizMaster/internal/infra/memory"
	redisstore "github.com/vanshshar/QuizMaster/internal/infra/redis"
	"github.com/vanshshar/QuizMaster/internal/infra/sqlite"
)

// openGateway builds the persistence gateway over the configured store
// backend. The returned func releases the backend.
func openGateway(ctx context.Context, configPath string) (*app.Gateway, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return app.NewGateway(memory.NewStore()), func() {}, nil

	case config.BackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("redis addr not configured")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return app.NewGateway(redisstore.NewStore(client, cfg.Redis.Prefix)), func() { _ = client.Close() }, nil

	default:
		db, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := applyMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return app.NewGateway(sqlite.NewStore(db)), func() { _ = db.Close() }, nil
	}
}
