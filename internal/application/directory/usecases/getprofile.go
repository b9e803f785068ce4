package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetProfileCommand struct {
	ProfileID uint
}

type GetProfileUseCase struct {
	profileRepo directory.Repository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo directory.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*directory.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to get directory profile", "error", err, "profile_id", cmd.ProfileID)
		return nil, fmt.Errorf("failed to get directory profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("faculty profile not found")
	}
	return profile, nil
}
