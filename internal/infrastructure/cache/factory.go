package cache

import (
	"context"
	"fmt"

	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// IdempotencyStoreFactory picks the webhook idempotency store for the
// deployment: Redis when reachable, otherwise process memory if allowed
type IdempotencyStoreFactory struct {
	redis  config.RedisConfig
	cfg    config.IdempotencyConfig
	logger *zap.Logger
}

// IdempotencyStoreFactoryOption is a functional option for configuring the factory
type IdempotencyStoreFactoryOption func(*IdempotencyStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) IdempotencyStoreFactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.logger = logger
	}
}

// NewIdempotencyStoreFactory creates a new factory
func NewIdempotencyStoreFactory(redisCfg config.RedisConfig, cfg config.IdempotencyConfig, opts ...IdempotencyStoreFactoryOption) *IdempotencyStoreFactory {
	f := &IdempotencyStoreFactory{
		redis:  redisCfg,
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore tries Redis first and falls back to memory when allowed
func (f *IdempotencyStoreFactory) CreateStore(ctx context.Context) (shared.IdempotencyStore, error) {
	store, err := NewRedisIdempotencyStore(ctx, f.redis, f.cfg.RedisKeyPrefix)
	if err == nil {
		f.logger.Info("Using Redis webhook idempotency store",
			zap.String("addr", fmt.Sprintf("%s:%d", f.redis.Host, f.redis.Port)))
		return store, nil
	}

	if !f.cfg.AllowInMemory {
		return nil, fmt.Errorf("redis required for webhook idempotency but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory webhook idempotency store",
		zap.Error(err))
	return NewInMemoryIdempotencyStore(0), nil
}
