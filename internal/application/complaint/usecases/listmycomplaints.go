package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type ListMyComplaintsCommand struct {
	ReporterID uint
	Status     string
	Category   string
	Priority   string
}

type ListMyComplaintsUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewListMyComplaintsUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMyComplaintsUseCase {
	return &ListMyComplaintsUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *ListMyComplaintsUseCase) Execute(ctx context.Context, cmd ListMyComplaintsCommand) ([]ComplaintDetails, error) {
	filter, err := parseFilter(cmd.Status, cmd.Category, cmd.Priority)
	if err != nil {
		return nil, err
	}

	complaints, err := uc.complaintRepo.ListByReporter(ctx, cmd.ReporterID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err, "reporter_id", cmd.ReporterID)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return loadDetails(ctx, uc.userRepo, complaints)
}
