package middlewares

import (
	"net/http"
	"strings"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and accepts only the given
// audiences (customer, vendor, admin). Missing and invalid tokens are both 401.
func AuthMiddleware(secret string, audiences ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

		claims, err := utils.ParseToken(tokenStr, secret, audiences...)
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "Token is not valid")
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func CustomerAuth(secret string) gin.HandlerFunc {
	return AuthMiddleware(secret, utils.AudienceCustomer)
}

func VendorAuth(secret string) gin.HandlerFunc {
	return AuthMiddleware(secret, utils.AudienceVendor)
}

func AdminAuth(secret string) gin.HandlerFunc {
	return AuthMiddleware(secret, utils.AudienceAdmin)
}

// CustomerOrVendorAuth is for endpoints both sides poll (live tracking).
func CustomerOrVendorAuth(secret string) gin.HandlerFunc {
	return AuthMiddleware(secret, utils.AudienceCustomer, utils.AudienceVendor)
}
