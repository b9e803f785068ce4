package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "campusdesk/internal/interfaces/http/handlers/complaint"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths must be registered before /:id.
		complaints.GET("/my-complaints", config.ComplaintHandler.ListMine)
		complaints.GET("/all",
			authorization.RequireRole(authorization.RoleAdmin),
			config.ComplaintHandler.ListAll)

		complaints.POST("", config.ComplaintHandler.Create)

		complaints.PUT("/:id/status",
			authorization.RequireRole(authorization.RoleAdmin),
			config.ComplaintHandler.UpdateStatus)
		complaints.GET("/:id", config.ComplaintHandler.Get)
		complaints.DELETE("/:id", config.ComplaintHandler.Delete)
	}
}
