package httpapi

import (
	"context"
	"net/http"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/core/feed"
	"inkwell/internal/core/follower"
	commentPort "inkwell/internal/ports/comment"
	feedPort "inkwell/internal/ports/feed"
	followerPort "inkwell/internal/ports/follower"
	groupPort "inkwell/internal/ports/group"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Inbound ports the controllers depend on

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, family, username, email, password string) (*userPort.UserDTO, error)
	ParseToken(token string) (string, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, postID uint64, editorID string, in postPort.EditPostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*postPort.PostDetailDTO, error)
}

type CommentUseCase interface {
	CreateComment(ctx context.Context, postID uint64, authorID, text string) (*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, username string) (follower.Outcome, error)
	UnfollowUser(ctx context.Context, followerID, username string) error
	GetFollowers(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error)
	GetFollowing(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error)
	IsFollowing(ctx context.Context, followerID, username string) (bool, error)
}

type FeedUseCase interface {
	GetFeed(ctx context.Context, q feed.Query) (*feedPort.FeedDTO, error)
	InvalidateCache(ctx context.Context) error
}

type GroupUseCase interface {
	CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error)
	DeleteGroup(ctx context.Context, slug string) error
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
	GetGroup(ctx context.Context, slug string) (*groupPort.GroupDTO, error)
}

// UseCases everything SetupRoutes wires into controllers
type UseCases struct {
	User     UserUseCase
	Post     PostUseCase
	Comment  CommentUseCase
	Follower FollowerUseCase
	Feed     FeedUseCase
	Group    GroupUseCase
}

// Options of the HTTP surface
type Options struct {
	AdminToken string
	MediaRoot  string
	MediaURL   string
}

// SetupRoutes routing only; use cases are injected
func SetupRoutes(uc UseCases, opts Options, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	users := NewUserController(uc.User, logger)
	posts := NewPostController(uc.Post, uc.Comment, logger)
	follows := NewFollowerController(uc.Follower, logger)
	feeds := NewFeedController(uc.Feed, logger)
	groups := NewGroupController(uc.Group, uc.Feed, logger)

	auth := middleware.JWTAuthMiddleware(uc.User)
	optional := middleware.OptionalAuth(uc.User)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.MediaURL != "" && opts.MediaRoot != "" {
		r.Static(opts.MediaURL, opts.MediaRoot)
	}

	r.POST("/register", users.RegisterUser)
	r.POST("/login", users.LoginUser)
	r.GET("/users/:username", users.GetUser)

	// feeds
	r.GET("/", optional, feeds.Index)
	r.GET("/group/:slug", optional, feeds.Group)
	r.GET("/profile/:username", optional, feeds.Profile)
	r.GET("/follow", auth, feeds.Following)

	r.GET("/profile/:username/follow", auth, follows.IsFollowing)
	r.POST("/profile/:username/follow", auth, follows.FollowUser)
	r.POST("/profile/:username/unfollow", auth, follows.UnfollowUser)
	r.GET("/profile/:username/followers", follows.GetFollowers)
	r.GET("/profile/:username/following", follows.GetFollowing)

	r.GET("/groups", groups.ListGroups)
	r.GET("/groups/:slug", groups.GetGroup)

	r.POST("/create", auth, posts.CreatePost)
	r.GET("/posts/:id", posts.GetPost)
	r.POST("/posts/:id/edit", auth, posts.EditPost)
	r.POST("/posts/:id/comment", auth, posts.CreateComment)

	admin := r.Group("/admin", middleware.AdminToken(opts.AdminToken))
	admin.POST("/groups", groups.CreateGroup)
	admin.DELETE("/groups/:slug", groups.DeleteGroup)
	admin.POST("/cache/clear", groups.ClearCache)

	return r
}
