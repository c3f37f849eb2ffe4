// Package app wires configuration, adapters and services into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	"yatube/internal/adapters/memory"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/adapters/storage"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	feedapp "yatube/internal/core/feed/service"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/observability"
	cachePort "yatube/internal/ports/cache"
	storagePort "yatube/internal/ports/storage"
	"yatube/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds every service the entry points use.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	// Sweeper is set when pages are cached in process.
	Sweeper *workers.CacheSweeper
	// SharedCache is true when the index cache lives outside this process (Redis).
	SharedCache bool

	Users     *userapp.UserService
	Groups    *groupapp.GroupService
	Posts     *postapp.PostService
	Comments  *commentapp.CommentService
	Followers *followerapp.FollowerService
	Feed      *feedapp.FeedService
}

// Open connects to MySQL (and Redis when REDIS_ADDR is set), migrates and wires the services.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := dbadapter.Migrate(db); err != nil {
		return nil, fmt.Errorf("error during migrations: %w", err)
	}
	config.Logger.Info("Database migrations completed")

	var (
		client  *redis.Client
		cache   cachePort.Cache
		sweeper *workers.CacheSweeper
	)
	if cfg.RedisAddr != "" {
		client, err = config.InitRedis(cfg)
		if err != nil {
			closeDB(db)
			return nil, err
		}
		cache = redisadapter.NewPageCacheRedis(client, redisadapter.DefaultPrefix)
	} else {
		config.Logger.Info("REDIS_ADDR not set, using in-process page cache")
		local := memory.NewPageCache()
		sweeper = workers.NewCacheSweeper(local, cfg.IndexCacheTTL, config.Logger)
		cache = local
	}

	images, err := NewImageStorage(ctx, cfg)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	a := New(cfg, db, cache, images)
	a.Redis = client
	a.SharedCache = client != nil
	a.Sweeper = sweeper
	return a, nil
}

// ErrCacheNotShared is returned when a command tries to reach another process's in-memory cache.
var ErrCacheNotShared = errors.New("index cache is in-process; set REDIS_ADDR to clear a running server's cache")

// ClearSharedIndexCache drops cached index pages for every process using the same Redis.
func (a *App) ClearSharedIndexCache(ctx context.Context) error {
	if !a.SharedCache {
		return ErrCacheNotShared
	}
	return a.Feed.ClearIndexCache(ctx)
}

// NewImageStorage picks the media backend named by MEDIA_BACKEND.
func NewImageStorage(ctx context.Context, cfg *config.Config) (storagePort.ImageStorage, error) {
	switch cfg.MediaBackend {
	case "s3":
		return storage.NewS3StorageFromConfig(ctx, cfg)
	default:
		return storage.NewLocalStorage(afero.NewOsFs(), cfg.MediaRoot, cfg.MediaURL), nil
	}
}

// New wires services over an already opened database and cache.
func New(cfg *config.Config, db *gorm.DB, cache cachePort.Cache, images storagePort.ImageStorage) *App {
	userRepo := dbadapter.NewUserRepositoryDatabase(db)         // آداپتر خروجی
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)       // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase(db)         // آداپتر خروجی
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)   // آداپتر خروجی
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db) // آداپتر خروجی

	return &App{
		Config:    cfg,
		DB:        db,
		Users:     userapp.NewUserService(userRepo, []byte(cfg.JWTSecret)),
		Groups:    groupapp.NewGroupService(groupRepo),
		Posts:     postapp.NewPostService(postRepo, groupRepo, userRepo, images),
		Comments:  commentapp.NewCommentService(commentRepo, postRepo),
		Followers: followerapp.NewFollowerService(followerRepo, userRepo),
		Feed: feedapp.NewFeedService(
			postRepo, groupRepo, userRepo, followerRepo,
			observability.NewInstrumentedCache(cache), images,
			cfg.PostsPerPage, cfg.IndexCacheTTL,
		),
	}
}

// Router تزریق یوزکیس‌ها به آداپتر ورودی
func (a *App) Router() *gin.Engine {
	r := httpapi.SetupRoutes(httpapi.UseCases{
		User:     a.Users,
		Group:    a.Groups,
		Post:     a.Posts,
		Comment:  a.Comments,
		Follower: a.Followers,
		Feed:     a.Feed,
	}, config.Logger)
	if a.Config.MediaBackend != "s3" {
		r.Static(a.Config.MediaURL, a.Config.MediaRoot)
	}
	return r
}

// Close بستن اتصالات به Redis و دیتابیس
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			config.Logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
	closeDB(a.DB)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		config.Logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		config.Logger.Error("Error closing database connection", zap.Error(err))
	}
}
