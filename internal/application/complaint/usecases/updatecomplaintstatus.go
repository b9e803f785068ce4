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

type UpdateComplaintStatusCommand struct {
	ComplaintID uint
	NewStatus   string
	AdminNotes  string
	AssigneeID  uint
}

// UpdateComplaintStatusUseCase is the moderation action: set the status and
// optionally leave notes or assign a handler. The admin role is enforced at
// the route.
type UpdateComplaintStatusUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewUpdateComplaintStatusUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateComplaintStatusUseCase {
	return &UpdateComplaintStatusUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *UpdateComplaintStatusUseCase) Execute(ctx context.Context, cmd UpdateComplaintStatusCommand) (*ComplaintDetails, error) {
	newStatus := vo.Status(cmd.NewStatus)
	if !newStatus.IsValid() {
		return nil, errors.NewValidationError("Valid status is required (pending, in_progress, resolved, closed)")
	}

	existing, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, fmt.Errorf("failed to load complaint: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Complaint not found")
	}

	if err := existing.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AdminNotes != "" {
		existing.SetAdminNotes(cmd.AdminNotes)
	}
	if cmd.AssigneeID != 0 {
		if err := existing.Assign(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.complaintRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", existing.ID())
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	uc.logger.Infow("complaint status changed",
		"complaint_id", existing.ID(),
		"status", newStatus.String())

	allDetails, err := loadDetails(ctx, uc.userRepo, []*complaint.Complaint{existing})
	if err != nil {
		uc.logger.Errorw("failed to load complaint parties", "error", err, "complaint_id", existing.ID())
		return nil, err
	}
	return &allDetails[0], nil
}
