// Package appointment exposes the appointment booking and workflow endpoints.
package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/appointment/usecases"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AppointmentHandler struct {
	bookUC        BookAppointmentExecutor
	transitionUC  TransitionAppointmentExecutor
	getUC         GetAppointmentExecutor
	listMineUC    ListMyAppointmentsExecutor
	listPendingUC ListPendingAppointmentsExecutor
	listFacultyUC ListRegisteredFacultyExecutor
	logger        logger.Interface
}

func NewAppointmentHandler(
	bookUC BookAppointmentExecutor,
	transitionUC TransitionAppointmentExecutor,
	getUC GetAppointmentExecutor,
	listMineUC ListMyAppointmentsExecutor,
	listPendingUC ListPendingAppointmentsExecutor,
	listFacultyUC ListRegisteredFacultyExecutor,
	log logger.Interface,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:        bookUC,
		transitionUC:  transitionUC,
		getUC:         getUC,
		listMineUC:    listMineUC,
		listPendingUC: listPendingUC,
		listFacultyUC: listFacultyUC,
		logger:        log,
	}
}

// Book handles POST /appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for book appointment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	studentID := c.GetUint(constants.ContextKeyUserID)
	cmd, err := req.ToCommand(studentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAppointmentResponse(result), "Appointment requested successfully")
}

// UpdateStatus handles PUT /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	appointmentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.transitionUC.Execute(c.Request.Context(), usecases.TransitionAppointmentCommand{
		AppointmentID: appointmentID,
		ActorID:       c.GetUint(constants.ContextKeyUserID),
		NewStatus:     req.Status,
		FacultyNotes:  req.FacultyNotes,
		MeetingLink:   req.MeetingLink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Appointment updated successfully", toAppointmentResponse(result))
}

// Get handles GET /appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	appointmentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAppointmentCommand{
		AppointmentID: appointmentID,
		ActorID:       c.GetUint(constants.ContextKeyUserID),
		ActorRole:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAppointmentResponse(result))
}

// ListMine handles GET /appointments/my-appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	results, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyAppointmentsCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
		Role:   role,
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toAppointmentResponses(results), len(results))
}

// ListPending handles GET /appointments/pending
func (h *AppointmentHandler) ListPending(c *gin.Context) {
	results, err := h.listPendingUC.Execute(c.Request.Context(), usecases.ListPendingAppointmentsCommand{
		FacultyID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toAppointmentResponses(results), len(results))
}

// ListRegisteredFaculty handles GET /appointments/faculty
//
// Lists the faculty accounts students can direct a booking at, as opposed to
// the directory listing which includes members who never signed up.
func (h *AppointmentHandler) ListRegisteredFaculty(c *gin.Context) {
	accounts, err := h.listFacultyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toFacultyAccountResponses(accounts), len(accounts))
}
