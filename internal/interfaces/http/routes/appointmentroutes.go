package routes

import (
	"github.com/gin-gonic/gin"

	appointmenthandlers "campusdesk/internal/interfaces/http/handlers/appointment"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

type AppointmentRouteConfig struct {
	AppointmentHandler *appointmenthandlers.AppointmentHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupAppointmentRoutes(engine *gin.Engine, config *AppointmentRouteConfig) {
	appointments := engine.Group("/appointments")
	appointments.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths must be registered before /:id.
		appointments.GET("/faculty", config.AppointmentHandler.ListRegisteredFaculty)
		appointments.GET("/my-appointments", config.AppointmentHandler.ListMine)
		appointments.GET("/pending",
			authorization.RequireRole(authorization.RoleFaculty),
			config.AppointmentHandler.ListPending)

		appointments.POST("",
			authorization.RequireRole(authorization.RoleStudent),
			config.AppointmentHandler.Book)

		appointments.PUT("/:id/status", config.AppointmentHandler.UpdateStatus)
		appointments.GET("/:id", config.AppointmentHandler.Get)
	}
}
