package httpapi

import (
	"net/http"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/core/follower"
	followerPort "inkwell/internal/ports/follower"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowerController struct {
	fc     FollowerUseCase
	logger *zap.Logger
}

func NewFollowerController(fc FollowerUseCase, logger *zap.Logger) *FollowerController {
	return &FollowerController{fc: fc, logger: logger}
}

// FollowUser always answers 200 for an existing user; created tells whether an edge was added
func (ctl *FollowerController) FollowUser(c *gin.Context) {
	username := c.Param("username")
	outcome, err := ctl.fc.FollowUser(c.Request.Context(), c.GetString(middleware.UserIDKey), username)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, followerPort.FollowResultDTO{
		Author:  username,
		Created: outcome == follower.Created,
	})
}

func (ctl *FollowerController) IsFollowing(c *gin.Context) {
	username := c.Param("username")
	following, err := ctl.fc.IsFollowing(c.Request.Context(), c.GetString(middleware.UserIDKey), username)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, followerPort.FollowStateDTO{Author: username, Following: following})
}

func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	username := c.Param("username")
	if err := ctl.fc.UnfollowUser(c.Request.Context(), c.GetString(middleware.UserIDKey), username); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "successfully unfollowed " + username})
}

func (ctl *FollowerController) GetFollowers(c *gin.Context) {
	followers, err := ctl.fc.GetFollowers(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *FollowerController) GetFollowing(c *gin.Context) {
	following, err := ctl.fc.GetFollowing(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, following)
}
