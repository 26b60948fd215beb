package tools

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogError logs err and aborts the request with status and a JSON error body.
func LogError(logger *zap.Logger, c *gin.Context, status int, err error) {
	logger.Error(err.Error(),
		zap.String("status", "error"),
		zap.String("path", c.Request.URL.Path),
		zap.Int("code", status),
	)

	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
	})
}
