package handlers

import (
	"errors"
	"net/http"

	"appwrite_api/tools"
	"appwrite_api/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type platformStatus struct {
	Status    string          `json:"status"`
	Endpoint  string          `json:"endpoint"`
	ProjectID string          `json:"projectId"`
	Handles   map[string]bool `json:"handles"`
}

// HealthHandler reports that the process is up.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}

// GetPlatformHandler reports which Appwrite the process is bound to and whether every handle is ready.
func GetPlatformHandler(logger *zap.Logger, app *types.AppwriteApp) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app == nil {
			tools.LogError(logger, c, http.StatusServiceUnavailable, errors.New("appwrite is not initialized"))
			return
		}

		handles := map[string]bool{
			"account":   app.Account != nil,
			"databases": app.Databases != nil,
			"functions": app.Functions != nil,
		}
		for _, name := range []string{"account", "databases", "functions"} {
			if !handles[name] {
				tools.LogError(logger, c, http.StatusServiceUnavailable, errors.New(name+" handle is not initialized"))
				return
			}
		}

		c.JSON(http.StatusOK, platformStatus{
			Status:    "ok",
			Endpoint:  app.Endpoint,
			ProjectID: app.ProjectID,
			Handles:   handles,
		})
	}
}
