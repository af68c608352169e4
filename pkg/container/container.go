package container

import (
	"context"
	"fmt"

	"library-api/internal/config"
	"library-api/internal/domains/auth"
	"library-api/internal/domains/book"
	bookhandler "library-api/internal/domains/book/handler"
	bookrepo "library-api/internal/domains/book/repository"
	bookservice "library-api/internal/domains/book/service"
	rediscache "library-api/internal/infrastructure/cache"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/logger"
)

// Container wires the application: config, infrastructure, domain
// services, and handlers, in dependency order.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  *rediscache.RedisCache

	BookHandler *bookhandler.BookHandler
	Checker     auth.CredentialChecker
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db, err := database.NewPostgresDB(ctx, dbCfg)
	if err != nil {
		return nil, err
	}

	redisCache, err := rediscache.NewRedisCache(ctx, &rediscache.RedisConfig{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	repo := bookrepo.NewCachedRepository(
		bookrepo.NewPostgresRepository(db.Pool), redisCache)
	bookSvc := bookservice.NewBookService(repo, book.NewValidator())

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		BookHandler: bookhandler.NewBookHandler(bookSvc),
		Checker:     auth.NewCredentialChecker(cfg.Auth.APIKey),
	}, nil
}

// Cleanup releases infrastructure resources in reverse init order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
