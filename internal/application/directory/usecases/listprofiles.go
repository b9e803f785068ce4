package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/shared/logger"
)

type ListProfilesUseCase struct {
	profileRepo directory.Repository
	logger      logger.Interface
}

func NewListProfilesUseCase(profileRepo directory.Repository, logger logger.Interface) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) ([]*directory.Profile, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list directory profiles", "error", err)
		return nil, fmt.Errorf("failed to list directory profiles: %w", err)
	}
	return profiles, nil
}
