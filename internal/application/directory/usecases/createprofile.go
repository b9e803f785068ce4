package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateProfileCommand struct {
	Name        string
	Department  string
	Email       string
	Designation string
	Phone       string
	Office      string
	Bio         string
}

type CreateProfileUseCase struct {
	profileRepo directory.Repository
	logger      logger.Interface
}

func NewCreateProfileUseCase(profileRepo directory.Repository, logger logger.Interface) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*directory.Profile, error) {
	profile, err := directory.NewProfile(cmd.Name, cmd.Department, cmd.Email, cmd.Designation, cmd.Phone, cmd.Office, cmd.Bio)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.profileRepo.GetByEmail(ctx, profile.Email())
	if err != nil {
		uc.logger.Errorw("failed to check profile email", "error", err)
		return nil, fmt.Errorf("failed to check profile email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("a faculty profile with this email already exists")
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a faculty profile with this email already exists")
		}
		uc.logger.Errorw("failed to create directory profile", "error", err)
		return nil, fmt.Errorf("failed to create directory profile: %w", err)
	}

	uc.logger.Infow("directory profile created", "profile_id", profile.ID(), "email", profile.Email())

	return profile, nil
}
