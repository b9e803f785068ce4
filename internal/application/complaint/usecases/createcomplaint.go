package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	vo "campusdesk/internal/domain/complaint/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateComplaintCommand struct {
	ReporterID  uint
	Category    string
	Title       string
	Description string
	Location    string
	Building    string
	Floor       string
	Priority    string
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*ComplaintDetails, error) {
	newComplaint, err := complaint.NewComplaint(
		cmd.ReporterID,
		vo.Category(cmd.Category),
		cmd.Title,
		cmd.Description,
		cmd.Location,
		cmd.Building,
		cmd.Floor,
		vo.Priority(cmd.Priority),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Create(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to create complaint", "error", err)
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	reporter, err := uc.userRepo.GetByID(ctx, newComplaint.ReporterID())
	if err != nil {
		uc.logger.Errorw("failed to load reporter account", "error", err, "reporter_id", newComplaint.ReporterID())
		return nil, fmt.Errorf("failed to load reporter account: %w", err)
	}

	uc.logger.Infow("complaint submitted",
		"complaint_id", newComplaint.ID(),
		"category", newComplaint.Category().String(),
		"priority", newComplaint.Priority().String())

	return &ComplaintDetails{Complaint: newComplaint, Reporter: reporter}, nil
}
