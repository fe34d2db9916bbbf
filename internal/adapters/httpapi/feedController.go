package httpapi

import (
	"net/http"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/core/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedController struct {
	fc     FeedUseCase
	logger *zap.Logger
}

func NewFeedController(fc FeedUseCase, logger *zap.Logger) *FeedController {
	return &FeedController{fc: fc, logger: logger}
}

func (ctl *FeedController) Index(c *gin.Context) {
	ctl.serve(c, feed.GlobalQuery(viewer(c), c.Query("page")))
}

func (ctl *FeedController) Group(c *gin.Context) {
	ctl.serve(c, feed.GroupQuery(c.Param("slug"), viewer(c), c.Query("page")))
}

func (ctl *FeedController) Profile(c *gin.Context) {
	ctl.serve(c, feed.AuthorQuery(c.Param("username"), viewer(c), c.Query("page")))
}

func (ctl *FeedController) Following(c *gin.Context) {
	ctl.serve(c, feed.FollowingQuery(viewer(c), c.Query("page")))
}

func (ctl *FeedController) serve(c *gin.Context, q feed.Query) {
	page, err := ctl.fc.GetFeed(c.Request.Context(), q)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func viewer(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
