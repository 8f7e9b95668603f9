package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamereviews-backend/internal/config"
	"gamereviews-backend/internal/infrastructure/cache"
	"gamereviews-backend/internal/infrastructure/database"
	"gamereviews-backend/internal/shared/existence"

	categoryHandler "gamereviews-backend/internal/domains/category/handler"
	categoryRepo "gamereviews-backend/internal/domains/category/repository"
	categoryService "gamereviews-backend/internal/domains/category/service"
	commentHandler "gamereviews-backend/internal/domains/comment/handler"
	commentRepo "gamereviews-backend/internal/domains/comment/repository"
	commentService "gamereviews-backend/internal/domains/comment/service"
	reviewHandler "gamereviews-backend/internal/domains/review/handler"
	reviewRepo "gamereviews-backend/internal/domains/review/repository"
	reviewService "gamereviews-backend/internal/domains/review/service"
	userHandler "gamereviews-backend/internal/domains/user/handler"
	userRepo "gamereviews-backend/internal/domains/user/repository"
	userService "gamereviews-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   *cache.Client
	Checker existence.Prober

	CategoryRepo categoryRepo.CategoryRepository
	UserRepo     userRepo.UserRepository
	ReviewRepo   reviewRepo.ReviewRepository
	CommentRepo  commentRepo.CommentRepository

	CategoryService categoryService.CategoryService
	UserService     userService.UserService
	ReviewService   reviewService.ReviewService
	CommentService  commentService.CommentService

	CategoryHandler *categoryHandler.CategoryHandler
	UserHandler     *userHandler.UserHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CommentHandler  *commentHandler.CommentHandler
}

// NewContainer builds the graph in dependency order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("database connected")

	// Redis is optional; without it the rate limiter is a pass-through.
	if cfg.Redis.Host != "" {
		client, err := cache.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed, rate limiting disabled")
		} else {
			c.Cache = client
			log.Info().Msg("redis connected")
		}
	}

	c.Checker = existence.NewChecker(db.Pool)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.Checker)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.Checker)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.Checker)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup releases infrastructure resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("database connections closed")
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		} else {
			log.Info().Msg("redis connections closed")
		}
	}
}
