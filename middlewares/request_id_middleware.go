package middlewares

import (
	"appwrite_api/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's X-Request-ID when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(types.REQUEST_ID_HEADER)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set(types.REQUEST_ID_CONTEXT_KEY, requestId)
		c.Header(types.REQUEST_ID_HEADER, requestId)
		c.Next()
	}
}
