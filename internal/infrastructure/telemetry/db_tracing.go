package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // include bound variables in db.statement; never in production
	SlowQueryThresh time.Duration
	DBName          string
	TracerProvider  trace.TracerProvider // nil uses the global provider
}

// DefaultDBTracingConfig returns default configuration for database tracing.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBName:          "shop",
	}
}

type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

type gormRegister interface {
	Register(name string, fn func(*gorm.DB)) error
}

type slowQueryCallback struct {
	threshold time.Duration
}

func (c *slowQueryCallback) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

func (c *slowQueryCallback) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	start, ok := ctx.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > c.threshold {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("threshold_ms", c.threshold.Milliseconds()),
		))
	}
}

// RegisterDBTracing installs the otelgorm plugin plus slow-query and error
// marking callbacks on db. It is a no-op when cfg.Enabled is false.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("failed to register otelgorm: %w", err)
	}

	slow := &slowQueryCallback{threshold: cfg.SlowQueryThresh}
	cb := db.Callback()
	hooks := []struct {
		before   gormRegister
		after    gormRegister
		op, name string
	}{
		{cb.Create().Before("gorm:create"), cb.Create().After("gorm:create").Before("otel:after:create"), "create", "create"},
		{cb.Query().Before("gorm:query"), cb.Query().After("gorm:query").Before("otel:after:select"), "query", "select"},
		{cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete").Before("otel:after:delete"), "delete", "delete"},
		{cb.Update().Before("gorm:update"), cb.Update().After("gorm:update").Before("otel:after:update"), "update", "update"},
		{cb.Row().Before("gorm:row"), cb.Row().After("gorm:row").Before("otel:after:row"), "row", "row"},
		{cb.Raw().Before("gorm:raw"), cb.Raw().After("gorm:raw").Before("otel:after:raw"), "raw", "raw"},
	}
	for _, h := range hooks {
		if err := h.before.Register("otel_timing:before_"+h.op, slow.before); err != nil {
			return fmt.Errorf("callback register before %s failed: %w", h.name, err)
		}
		if err := h.after.Register("otel_slow_query:"+h.op, slow.after); err != nil {
			return fmt.Errorf("callback register after %s failed: %w", h.name, err)
		}
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
		zap.String("db_name", cfg.DBName),
	)
	return nil
}
