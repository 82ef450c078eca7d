package middlewares

import (
	"net/http"
	"strings"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the token from ?token= (browsers cannot set headers
// on a websocket handshake) or falls back to the Authorization header.
func WSAuthMiddleware(secret string, audiences ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Abort(c, http.StatusUnauthorized, "missing token")
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret, audiences...)
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
