package middleware

import (
	"net/http"

	"report2clean/models"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates a route group on the admin role claim. It must
// run after UserAuthMiddleware, which populates the role.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.AccountAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
