package httpapi

import (
	"context"
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/access"
	commentPort "yatube/internal/ports/comment"
	followerPort "yatube/internal/ports/follower"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error)
	ParseToken(raw string) (access.Actor, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, actor access.Actor, in postPort.PostInput) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, actor access.Actor, postID uint, in postPort.PostInput) (*postPort.PostDTO, error)
	CheckEdit(ctx context.Context, actor access.Actor, postID uint) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, id uint) (*postPort.PostDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, actor access.Actor, postID uint, text string) (*commentPort.CommentDTO, error)
	ListForPost(ctx context.Context, postID uint) ([]*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	Follow(ctx context.Context, actor access.Actor, username string) error
	Unfollow(ctx context.Context, actor access.Actor, username string) error
	GetFollowers(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error)
	GetFollowing(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error)
}

type FeedUseCase interface {
	Index(ctx context.Context, page int) ([]byte, error)
	Group(ctx context.Context, slug string, page int) (*postPort.GroupFeed, error)
	Profile(ctx context.Context, viewer access.Actor, username string, page int) (*postPort.ProfileFeed, error)
	Following(ctx context.Context, actor access.Actor, page int) (postPort.PostPage, error)
}

// UseCases همه UseCaseهایی که روتر به آن‌ها نیاز دارد
type UseCases struct {
	User     UserUseCase
	Group    GroupUseCase
	Post     PostUseCase
	Comment  CommentUseCase
	Follower FollowerUseCase
	Feed     FeedUseCase
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(uc UseCases, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics(), middleware.OptionalAuth(uc.User), middleware.RequestLogger(log))

	userCtl := NewUserController(uc.User)
	groupCtl := NewGroupController(uc.Group)
	postCtl := NewPostController(uc.Post, uc.Comment)
	followerCtl := NewFollowerController(uc.Follower)
	feedCtl := NewFeedController(uc.Feed)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// مسیرهای ثبت‌نام و ورود
	r.POST("/auth/signup/", userCtl.RegisterUser)
	r.POST("/auth/login/", userCtl.LoginUser)

	// فیدها
	r.GET("/", feedCtl.Index)
	r.GET("/group/:slug/", feedCtl.Group)
	r.GET("/profile/:username/", feedCtl.Profile)
	r.GET("/follow/", feedCtl.Following)
	r.GET("/groups/", groupCtl.ListGroups)

	// پست‌ها و نظرها
	r.GET("/create/", postCtl.CreateForm)
	r.POST("/create/", postCtl.CreatePost)
	r.GET("/posts/:id/", postCtl.PostDetail)
	r.GET("/posts/:id/edit/", postCtl.EditForm)
	r.POST("/posts/:id/edit/", postCtl.EditPost)
	r.POST("/posts/:id/comment/", postCtl.AddComment)

	// دنبال کردن
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		r.Handle(method, "/profile/:username/follow/", followerCtl.Follow)
		r.Handle(method, "/profile/:username/unfollow/", followerCtl.Unfollow)
	}
	r.GET("/profile/:username/followers/", followerCtl.GetFollowers)
	r.GET("/profile/:username/following/", followerCtl.GetFollowing)
	return r
}
