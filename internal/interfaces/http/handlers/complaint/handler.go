// Package complaint exposes the facility complaint endpoints.
package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/complaint/usecases"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ComplaintHandler struct {
	createUC       CreateComplaintExecutor
	getUC          GetComplaintExecutor
	listMineUC     ListMyComplaintsExecutor
	listAllUC      ListAllComplaintsExecutor
	updateStatusUC UpdateComplaintStatusExecutor
	deleteUC       DeleteComplaintExecutor
	logger         logger.Interface
}

func NewComplaintHandler(
	createUC CreateComplaintExecutor,
	getUC GetComplaintExecutor,
	listMineUC ListMyComplaintsExecutor,
	listAllUC ListAllComplaintsExecutor,
	updateStatusUC UpdateComplaintStatusExecutor,
	deleteUC DeleteComplaintExecutor,
	log logger.Interface,
) *ComplaintHandler {
	return &ComplaintHandler{
		createUC:       createUC,
		getUC:          getUC,
		listMineUC:     listMineUC,
		listAllUC:      listAllUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		logger:         log,
	}
}

// Create handles POST /complaints
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	reporterID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(reporterID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toComplaintResponse(result), "Complaint submitted successfully")
}

// Get handles GET /complaints/:id
func (h *ComplaintHandler) Get(c *gin.Context) {
	complaintID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetComplaintCommand{
		ComplaintID: complaintID,
		ActorID:     c.GetUint(constants.ContextKeyUserID),
		ActorRole:   role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toComplaintResponse(result))
}

// ListMine handles GET /complaints/my-complaints
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	results, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyComplaintsCommand{
		ReporterID: c.GetUint(constants.ContextKeyUserID),
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Priority:   c.Query("priority"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toComplaintResponses(results), len(results))
}

// ListAll handles GET /complaints/all
func (h *ComplaintHandler) ListAll(c *gin.Context) {
	results, err := h.listAllUC.Execute(c.Request.Context(), usecases.ListAllComplaintsCommand{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toComplaintResponses(results), len(results))
}

// UpdateStatus handles PUT /complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	complaintID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateComplaintStatusCommand{
		ComplaintID: complaintID,
		NewStatus:   req.Status,
		AdminNotes:  req.AdminNotes,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint updated successfully", toComplaintResponse(result))
}

// Delete handles DELETE /complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	complaintID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, _ := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteComplaintCommand{
		ComplaintID: complaintID,
		ActorID:     c.GetUint(constants.ContextKeyUserID),
		ActorRole:   role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint deleted successfully", nil)
}
