package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type ListAllComplaintsCommand struct {
	Status   string
	Category string
	Priority string
}

// ListAllComplaintsUseCase is the moderation view across all reporters,
// ordered by priority and then recency.
type ListAllComplaintsUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewListAllComplaintsUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListAllComplaintsUseCase {
	return &ListAllComplaintsUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *ListAllComplaintsUseCase) Execute(ctx context.Context, cmd ListAllComplaintsCommand) ([]ComplaintDetails, error) {
	filter, err := parseFilter(cmd.Status, cmd.Category, cmd.Priority)
	if err != nil {
		return nil, err
	}

	complaints, err := uc.complaintRepo.ListAll(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return loadDetails(ctx, uc.userRepo, complaints)
}
