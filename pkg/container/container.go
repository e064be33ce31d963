package container

import (
	"context"
	"fmt"
	"time"

	"texarea-backend/internal/config"
	infraCache "texarea-backend/internal/infrastructure/cache"
	"texarea-backend/internal/infrastructure/database"
	"texarea-backend/internal/infrastructure/storage"
	"texarea-backend/pkg/cache"
	"texarea-backend/pkg/logger"
	"texarea-backend/pkg/token"

	"texarea-backend/internal/domains/auth"
	authHandler "texarea-backend/internal/domains/auth/handler"
	authService "texarea-backend/internal/domains/auth/service"

	"texarea-backend/internal/domains/blog"
	blogHandler "texarea-backend/internal/domains/blog/handler"
	blogRepo "texarea-backend/internal/domains/blog/repository"
	blogService "texarea-backend/internal/domains/blog/service"

	"texarea-backend/internal/domains/upload"
	uploadHandler "texarea-backend/internal/domains/upload/handler"
	uploadService "texarea-backend/internal/domains/upload/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton wired once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	TokenStore token.Store
	Storage    *storage.MinIOStorage

	BlogRepo blog.Repository

	BlogService   blog.Service
	AuthService   auth.Service
	UploadService upload.Service

	BlogHandler   *blogHandler.BlogHandler
	AuthHandler   *authHandler.AuthHandler
	UploadHandler *uploadHandler.UploadHandler

	redisCache *infraCache.RedisCache
}

// NewContainer builds the whole graph in dependency order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initCache(); err != nil {
		return nil, err
	}
	if err := c.initTokenStore(); err != nil {
		return nil, err
	}
	if err := c.initStorage(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	return nil
}

func (c *Container) initCache() error {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	// A cold cache is not fatal for reads; the repository falls back to
	// the database. Session storage on Redis is checked separately.
	if err := redisCache.Connect(context.Background()); err != nil {
		if c.Config.Admin.SessionStore == "redis" {
			return fmt.Errorf("redis is required for SESSION_STORE=redis: %w", err)
		}
		logger.Warn("Redis unavailable, read caching degraded", err)
	}

	c.redisCache = redisCache
	c.Cache = redisCache
	return nil
}

func (c *Container) initTokenStore() error {
	ttl := time.Duration(c.Config.Admin.TokenTTLHours) * time.Hour

	switch c.Config.Admin.SessionStore {
	case "redis":
		c.TokenStore = token.NewRedisStore(c.redisCache.Client(), ttl)
	case "memory":
		c.TokenStore = token.NewMemoryStore(ttl)
	default:
		return fmt.Errorf("unknown session store: %s", c.Config.Admin.SessionStore)
	}

	logger.Info("Token store ready", map[string]interface{}{
		"backend": c.Config.Admin.SessionStore,
	})
	return nil
}

func (c *Container) initStorage() error {
	store, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	return nil
}

func (c *Container) initRepositories() {
	c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
}

func (c *Container) initServices() {
	c.BlogService = blogService.NewBlogService(c.BlogRepo)

	c.AuthService = authService.NewAuthService(
		c.TokenStore,
		authService.Credentials{
			Username:     c.Config.Admin.Username,
			Password:     c.Config.Admin.Password,
			PasswordHash: c.Config.Admin.PasswordHash,
		},
		time.Duration(c.Config.Admin.TokenTTLHours)*time.Hour,
	)

	c.UploadService = uploadService.NewUploadService(c.Storage, uploadService.Limits{
		MaxFileSize: c.Config.Upload.MaxFileSize,
		MaxFiles:    c.Config.Upload.MaxFiles,
	})
}

func (c *Container) initHandlers() {
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

// Cleanup releases shared resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Warn("Failed to close Redis client", err)
		}
	}

	logger.Info("Container resources released", nil)
}
