package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	campusConfig   config.CampusConfig
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	campusConfig config.CampusConfig,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		campusConfig:   campusConfig,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok || !role.IsRegisterable() {
		return nil, errors.NewValidationError(`role must be either "faculty" or "student"`)
	}

	email, err := vo.NewCollegeEmail(cmd.Email, uc.campusConfig.AllowedEmailDomains)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	passwordHash, err := uc.passwordHasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Name, email, passwordHash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := uc.jwtService.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", newUser.Role().String())

	return &AuthResult{
		User:        newUser,
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
	}, nil
}
