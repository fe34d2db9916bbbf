package httpapi

import (
	"errors"
	"net/http"

	"inkwell/internal/core/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps the use case error taxonomy onto HTTP statuses
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": apperr.FieldErrors(err)})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, apperr.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": map[string]string{field: message}})
}
