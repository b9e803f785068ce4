package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

// ListRegisteredFacultyUseCase lists faculty accounts students can book
// with. Directory profiles without a registered account are excluded; the
// booking flow would reject them anyway.
type ListRegisteredFacultyUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListRegisteredFacultyUseCase(userRepo user.Repository, logger logger.Interface) *ListRegisteredFacultyUseCase {
	return &ListRegisteredFacultyUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListRegisteredFacultyUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	faculty, err := uc.userRepo.ListByRole(ctx, authorization.RoleFaculty)
	if err != nil {
		uc.logger.Errorw("failed to list faculty accounts", "error", err)
		return nil, fmt.Errorf("failed to list faculty accounts: %w", err)
	}
	return faculty, nil
}
