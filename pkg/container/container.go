package container

import (
	"context"
	"fmt"
	"time"

	"bookmanager/internal/config"
	infraCache "bookmanager/internal/infrastructure/cache"
	infraDB "bookmanager/internal/infrastructure/database"
	"bookmanager/pkg/cache"
	"bookmanager/pkg/database"
	"bookmanager/pkg/idgen"
	"bookmanager/pkg/logger"

	authorHandler "bookmanager/internal/domains/author/handler"
	authorRepo "bookmanager/internal/domains/author/repository"
	authorService "bookmanager/internal/domains/author/service"
	bookHandler "bookmanager/internal/domains/book/handler"
	bookRepo "bookmanager/internal/domains/book/repository"
	bookService "bookmanager/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API, built once at startup.
// Initialization order: config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config    *config.Config
	DB        *infraDB.PostgresDB
	Cache     cache.Cache // RedisCache when REDIS_ENABLED, Nop otherwise
	TxManager database.TxManager
	IDs       idgen.Generator
	Clock     func() time.Time

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config, connects to PostgreSQL (and Redis when enabled)
// and wires the whole dependency graph.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", nil)

	c := &Container{
		Config: cfg,
		IDs:    idgen.NewUUIDv7(),
		Clock:  time.Now,
	}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	logger.Info("🗄️  Connecting to PostgreSQL...", nil)

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := infraDB.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	c.TxManager = database.NewTxManager(db.Pool)
	logger.Info("✅ Database connected", nil)

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.Cache = newCache(ctx, cfg.Redis)

	// ========================================
	// STEP 3: LAYERS
	// ========================================
	c.wire()

	logger.Info("🎉 DI Container initialized successfully", map[string]interface{}{
		"environment": cfg.App.Environment,
		"cache":       cfg.Redis.Enabled,
	})
	return c, nil
}

// newCache never fails startup: an unreachable Redis only logs a warning
// and the service keeps reading through to the database.
func newCache(ctx context.Context, cfg config.RedisConfig) cache.Cache {
	if !cfg.Enabled {
		logger.Info("⚪ Redis cache disabled", nil)
		return cache.Nop{}
	}

	logger.Info("🔴 Connecting to Redis...", map[string]interface{}{"addr": cfg.Host})

	redisCache := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("⚠️  Redis connection failed (non-critical)", err)
		} else {
			logger.Info("✅ Redis connected", nil)
		}
	}

	return redisCache
}

// wire builds repositories, services and handlers from the infrastructure
// fields, which must already be set.
func (c *Container) wire() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.IDs)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.IDs)
	logger.Debug("📦 Repositories initialized")

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.TxManager, c.Cache, c.Config.Redis.TTL)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.TxManager)
	logger.Debug("⚙️  Services initialized")

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Clock)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	logger.Debug("🎯 Handlers initialized")
}

// Cleanup releases the pool and the Redis client. Called on shutdown.
func (c *Container) Cleanup() {
	logger.Info("🧹 Cleaning up container resources...", nil)

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("⚠️  Failed to close database", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("⚠️  Failed to close Redis", err)
		} else {
			logger.Info("✅ Redis connections closed", nil)
		}
	}

	logger.Info("✅ Container cleanup completed", nil)
}
