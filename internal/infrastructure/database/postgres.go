package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/pkg/logger"
)

// DBConfig holds connection and pool settings for Postgres.
type DBConfig struct {
	Host              string
	Port              int
	Username          string
	Password          string
	DBName            string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
}

// PostgresDB wraps a pgx connection pool.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB connects to Postgres with retry and returns the wrapped pool.
func NewPostgresDB(ctx context.Context, cfg *DBConfig) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := connectWithRetry(ctx, poolConfig, cfg)
	if err != nil {
		return nil, err
	}

	return &PostgresDB{Pool: pool, Config: cfg}, nil
}

func buildConnectionString(cfg *DBConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
}

func connectWithRetry(ctx context.Context, poolConfig *pgxpool.Config, cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				logger.Info("connected to database", map[string]interface{}{
					"host":    cfg.Host,
					"port":    cfg.Port,
					"dbname":  cfg.DBName,
					"attempt": attempt,
				})
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}

		if attempt < cfg.MaxRetries {
			// Exponential backoff: delay doubles each attempt.
			delay := cfg.RetryDelay * time.Duration(1<<uint(attempt-1))
			logger.Warn(fmt.Sprintf("database connection attempt %d/%d failed, retrying in %s",
				attempt, cfg.MaxRetries, delay), err)

			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.MaxRetries, err)
}

// HealthCheck pings the database with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		logger.Info("database connection closed", nil)
	}
}
