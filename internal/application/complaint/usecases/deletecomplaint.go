package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteComplaintCommand struct {
	ComplaintID uint
	ActorID     uint
	ActorRole   authorization.UserRole
}

type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(complaintRepo complaint.Repository, logger logger.Interface) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) error {
	existing, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return fmt.Errorf("failed to load complaint: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("Complaint not found")
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, existing.ReporterID()) {
		return errors.NewForbiddenError("Not authorized to delete this complaint")
	}

	if err := uc.complaintRepo.Delete(ctx, existing.ID()); err != nil {
		uc.logger.Errorw("failed to delete complaint", "error", err, "complaint_id", existing.ID())
		return fmt.Errorf("failed to delete complaint: %w", err)
	}

	uc.logger.Infow("complaint deleted", "complaint_id", existing.ID(), "actor_id", cmd.ActorID)

	return nil
}
