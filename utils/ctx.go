package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated principal's id, 0 when absent.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Get("userId")
	uid, _ := id.(uint)
	return uid
}

// CurrentRole returns the token namespace (customer, vendor or admin).
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
