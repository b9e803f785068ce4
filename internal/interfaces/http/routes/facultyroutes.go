package routes

import (
	"github.com/gin-gonic/gin"

	facultyhandlers "campusdesk/internal/interfaces/http/handlers/faculty"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

type FacultyRouteConfig struct {
	FacultyHandler *facultyhandlers.FacultyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFacultyRoutes(engine *gin.Engine, config *FacultyRouteConfig) {
	faculty := engine.Group("/faculty")
	{
		// The directory is browsable before login; only imports need auth.
		faculty.GET("", config.FacultyHandler.ListProfiles)
		faculty.GET("/:id", config.FacultyHandler.GetProfile)
		faculty.POST("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireRole(authorization.RoleAdmin),
			config.FacultyHandler.CreateProfile)
	}
}
