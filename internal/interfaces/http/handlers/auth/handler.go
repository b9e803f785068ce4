// Package auth exposes the account endpoints: registration, login, the
// current-user lookup, and the password reset flow.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC      RegisterExecutor
	loginUC         LoginExecutor
	currentUserUC   GetCurrentUserExecutor
	forgotPasswdUC  RequestPasswordResetExecutor
	resetPasswordUC ResetPasswordExecutor
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC RegisterExecutor,
	loginUC LoginExecutor,
	currentUserUC GetCurrentUserExecutor,
	forgotPasswdUC RequestPasswordResetExecutor,
	resetPasswordUC ResetPasswordExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		currentUserUC:   currentUserUC,
		forgotPasswdUC:  forgotPasswdUC,
		resetPasswordUC: resetPasswordUC,
		logger:          log,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAuthResponse(result), "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", toAuthResponse(result))
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	currentUser, err := h.currentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserCommand{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(currentUser))
}

// ForgotPassword handles POST /auth/forgot-password
//
// The response is the same whether or not the email belongs to an account,
// so the endpoint cannot be used to probe for registered addresses.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.forgotPasswdUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "If an account with that email exists, a password reset link has been sent", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", toAuthResponse(result))
}
