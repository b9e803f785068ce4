// Package http assembles the gin engine: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appointmentServices "campusdesk/internal/application/appointment/services"
	appointmentUsecases "campusdesk/internal/application/appointment/usecases"
	complaintUsecases "campusdesk/internal/application/complaint/usecases"
	directoryUsecases "campusdesk/internal/application/directory/usecases"
	userUsecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/email"
	"campusdesk/internal/infrastructure/repository"
	appointmenthandlers "campusdesk/internal/interfaces/http/handlers/appointment"
	authhandlers "campusdesk/internal/interfaces/http/handlers/auth"
	complainthandlers "campusdesk/internal/interfaces/http/handlers/complaint"
	facultyhandlers "campusdesk/internal/interfaces/http/handlers/faculty"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/interfaces/http/routes"
	"campusdesk/internal/shared/logger"
)

// Router holds the configured gin engine and its route dependencies.
type Router struct {
	engine             *gin.Engine
	authHandler        *authhandlers.AuthHandler
	facultyHandler     *facultyhandlers.FacultyHandler
	appointmentHandler *appointmenthandlers.AppointmentHandler
	complaintHandler   *complainthandlers.ComplaintHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
}

// NewRouter creates the engine and wires all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	userRepo := repository.NewUserRepository(db, log.Named("user-repo"))
	profileRepo := repository.NewFacultyProfileRepository(db, log.Named("profile-repo"))
	appointmentRepo := repository.NewAppointmentRepository(db, log.Named("appointment-repo"))
	complaintRepo := repository.NewComplaintRepository(db, log.Named("complaint-repo"))

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, jwtService, cfg.Campus, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	currentUserUC := userUsecases.NewGetCurrentUserUseCase(userRepo, log)
	forgotPasswdUC := userUsecases.NewRequestPasswordResetUseCase(userRepo, emailService, cfg.Auth.Token, log)
	resetPasswordUC := userUsecases.NewResetPasswordUseCase(userRepo, hasher, jwtService, log)

	listProfilesUC := directoryUsecases.NewListProfilesUseCase(profileRepo, log)
	getProfileUC := directoryUsecases.NewGetProfileUseCase(profileRepo, log)
	createProfileUC := directoryUsecases.NewCreateProfileUseCase(profileRepo, log)

	facultyResolver := appointmentServices.NewFacultyResolver(profileRepo, userRepo, log.Named("faculty-resolver"))

	bookUC := appointmentUsecases.NewBookAppointmentUseCase(appointmentRepo, userRepo, facultyResolver, emailService, log)
	transitionUC := appointmentUsecases.NewTransitionAppointmentUseCase(appointmentRepo, userRepo, profileRepo, emailService, log)
	getAppointmentUC := appointmentUsecases.NewGetAppointmentUseCase(appointmentRepo, userRepo, log)
	listMyAppointmentsUC := appointmentUsecases.NewListMyAppointmentsUseCase(appointmentRepo, userRepo, log)
	listPendingUC := appointmentUsecases.NewListPendingAppointmentsUseCase(appointmentRepo, userRepo, log)
	listRegisteredFacultyUC := appointmentUsecases.NewListRegisteredFacultyUseCase(userRepo, log)

	createComplaintUC := complaintUsecases.NewCreateComplaintUseCase(complaintRepo, userRepo, log)
	getComplaintUC := complaintUsecases.NewGetComplaintUseCase(complaintRepo, userRepo, log)
	listMyComplaintsUC := complaintUsecases.NewListMyComplaintsUseCase(complaintRepo, userRepo, log)
	listAllComplaintsUC := complaintUsecases.NewListAllComplaintsUseCase(complaintRepo, userRepo, log)
	updateComplaintStatusUC := complaintUsecases.NewUpdateComplaintStatusUseCase(complaintRepo, userRepo, log)
	deleteComplaintUC := complaintUsecases.NewDeleteComplaintUseCase(complaintRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth-middleware"))

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.AuthRequestsPerMinute, time.Minute)
	}

	return &Router{
		engine: engine,
		authHandler: authhandlers.NewAuthHandler(
			registerUC, loginUC, currentUserUC, forgotPasswdUC, resetPasswordUC,
			log.Named("auth-handler"),
		),
		facultyHandler: facultyhandlers.NewFacultyHandler(
			listProfilesUC, getProfileUC, createProfileUC,
			log.Named("faculty-handler"),
		),
		appointmentHandler: appointmenthandlers.NewAppointmentHandler(
			bookUC, transitionUC, getAppointmentUC, listMyAppointmentsUC, listPendingUC, listRegisteredFacultyUC,
			log.Named("appointment-handler"),
		),
		complaintHandler: complainthandlers.NewComplaintHandler(
			createComplaintUC, getComplaintUC, listMyComplaintsUC, listAllComplaintsUC, updateComplaintStatusUC, deleteComplaintUC,
			log.Named("complaint-handler"),
		),
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes registers all endpoints on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupFacultyRoutes(r.engine, &routes.FacultyRouteConfig{
		FacultyHandler: r.facultyHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAppointmentRoutes(r.engine, &routes.AppointmentRouteConfig{
		AppointmentHandler: r.appointmentHandler,
		AuthMiddleware:     r.authMiddleware,
	})
	routes.SetupComplaintRoutes(r.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: r.complaintHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
