package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupController struct {
	gc     GroupUseCase
	fc     FeedUseCase
	logger *zap.Logger
}

func NewGroupController(gc GroupUseCase, fc FeedUseCase, logger *zap.Logger) *GroupController {
	return &GroupController{gc: gc, fc: fc, logger: logger}
}

func (ctl *GroupController) ListGroups(c *gin.Context) {
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (ctl *GroupController) GetGroup(c *gin.Context) {
	g, err := ctl.gc.GetGroup(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (ctl *GroupController) CreateGroup(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	g, err := ctl.gc.CreateGroup(c.Request.Context(), req.Title, req.Slug, req.Description)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (ctl *GroupController) DeleteGroup(c *gin.Context) {
	if err := ctl.gc.DeleteGroup(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *GroupController) ClearCache(c *gin.Context) {
	if err := ctl.fc.InvalidateCache(c.Request.Context()); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feed cache cleared"})
}
