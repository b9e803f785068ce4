package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/constants"
)

// RequireRole aborts the request unless the authenticated user holds the given role.
func RequireRole(role UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": role.String() + " access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether userID may act on a resource
// owned by resourceOwnerID. Admins may act on anything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
