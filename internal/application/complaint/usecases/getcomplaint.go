package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetComplaintCommand struct {
	ComplaintID uint
	ActorID     uint
	ActorRole   authorization.UserRole
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, cmd GetComplaintCommand) (*ComplaintDetails, error) {
	existing, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, fmt.Errorf("failed to load complaint: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Complaint not found")
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, existing.ReporterID()) {
		return nil, errors.NewForbiddenError("Not authorized to view this complaint")
	}

	allDetails, err := loadDetails(ctx, uc.userRepo, []*complaint.Complaint{existing})
	if err != nil {
		uc.logger.Errorw("failed to load complaint parties", "error", err, "complaint_id", existing.ID())
		return nil, err
	}
	return &allDetails[0], nil
}
