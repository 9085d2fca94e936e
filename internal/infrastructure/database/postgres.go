package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"animalovers-backend/internal/config"
	"animalovers-backend/pkg/logger"
)

const (
	connectTimeout = 10 * time.Second
	maxRetries     = 3
	retryDelay     = time.Second
)

// Gateway owns the two connection pools backing the data access tiers:
// the public pool authenticates as the restricted role (row-level
// policies apply), the admin pool as the elevated role. Handlers for
// anonymous traffic must only ever see the public pool.
type Gateway struct {
	public *pgxpool.Pool
	admin  *pgxpool.Pool
}

// NewGateway connects both pools. Missing credentials surface here as a
// connection error rather than at first query.
func NewGateway(ctx context.Context, cfg *config.DatabaseConfig) (*Gateway, error) {
	public, err := connect(ctx, cfg, cfg.PublicUser, cfg.PublicPassword)
	if err != nil {
		return nil, fmt.Errorf("public pool: %w", err)
	}

	admin, err := connect(ctx, cfg, cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		public.Close()
		return nil, fmt.Errorf("admin pool: %w", err)
	}

	return &Gateway{public: public, admin: admin}, nil
}

// Public returns the restricted pool.
func (g *Gateway) Public() *pgxpool.Pool { return g.public }

// Admin returns the elevated pool.
func (g *Gateway) Admin() *pgxpool.Pool { return g.admin }

func (g *Gateway) Close() {
	g.public.Close()
	g.admin.Close()
}

// HealthCheck pings both pools.
func (g *Gateway) HealthCheck(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := g.public.Ping(healthCtx); err != nil {
		return fmt.Errorf("public pool ping failed: %w", err)
	}
	if err := g.admin.Ping(healthCtx); err != nil {
		return fmt.Errorf("admin pool ping failed: %w", err)
	}
	return nil
}

func connect(ctx context.Context, cfg *config.DatabaseConfig, user, password string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout

	return connectWithRetry(ctx, poolCfg, user)
}

// connectWithRetry retries with exponential backoff so a database that is
// still starting up does not kill the process.
func connectWithRetry(ctx context.Context, poolCfg *pgxpool.Config, user string) (*pgxpool.Pool, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
		cancel()

		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				logger.Info("database connected", map[string]interface{}{
					"user":    user,
					"attempt": attempt,
				})
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}
		lastErr = err

		if attempt < maxRetries {
			delay := retryDelay * time.Duration(1<<uint(attempt-1))
			logger.Warn("database connection failed, retrying", map[string]interface{}{
				"user":    user,
				"attempt": attempt,
				"delay":   delay.String(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}
