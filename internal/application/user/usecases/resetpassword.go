package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Execute swaps the credential for a valid reset token and logs the account
// in with a fresh bearer token.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) (*AuthResult, error) {
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tokenHash := vo.HashToken(cmd.Token)
	existingUser, err := uc.userRepo.GetByResetTokenHash(ctx, tokenHash)
	if err != nil {
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return nil, fmt.Errorf("failed to look up reset token: %w", err)
	}
	if existingUser == nil || !existingUser.HasValidResetToken(cmd.Token, time.Now()) {
		return nil, errors.NewValidationError("invalid or expired reset token")
	}

	passwordHash, err := uc.passwordHasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := existingUser.ResetPassword(passwordHash); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())

	return &AuthResult{
		User:        existingUser,
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
	}, nil
}
