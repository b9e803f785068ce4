// Package routes wires handlers and middleware onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "campusdesk/internal/interfaces/http/handlers/auth"
	"campusdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")

	// Credential endpoints are rate limited per IP to slow down guessing.
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}

	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/forgot-password", config.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", config.AuthHandler.ResetPassword)

		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Me)
	}
}
