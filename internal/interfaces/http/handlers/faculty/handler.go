// Package faculty exposes the faculty directory endpoints.
package faculty

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/directory/usecases"
	"campusdesk/internal/domain/directory"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ListProfilesExecutor interface {
	Execute(ctx context.Context) ([]*directory.Profile, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetProfileCommand) (*directory.Profile, error)
}

type CreateProfileExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateProfileCommand) (*directory.Profile, error)
}

type FacultyHandler struct {
	listProfilesUC  ListProfilesExecutor
	getProfileUC    GetProfileExecutor
	createProfileUC CreateProfileExecutor
	logger          logger.Interface
}

func NewFacultyHandler(
	listProfilesUC ListProfilesExecutor,
	getProfileUC GetProfileExecutor,
	createProfileUC CreateProfileExecutor,
	log logger.Interface,
) *FacultyHandler {
	return &FacultyHandler{
		listProfilesUC:  listProfilesUC,
		getProfileUC:    getProfileUC,
		createProfileUC: createProfileUC,
		logger:          log,
	}
}

// ListProfiles handles GET /faculty
func (h *FacultyHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.listProfilesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toProfileResponses(profiles), len(profiles))
}

// GetProfile handles GET /faculty/:id
func (h *FacultyHandler) GetProfile(c *gin.Context) {
	profileID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileCommand{
		ProfileID: profileID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProfileResponse(profile))
}

// CreateProfile handles POST /faculty
func (h *FacultyHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create profile", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.createProfileUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProfileResponse(profile), "Faculty profile created successfully")
}
