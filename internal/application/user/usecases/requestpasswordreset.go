package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase issues a reset token and mails it. The outcome
// is identical whether or not the email belongs to an account.
type RequestPasswordResetUseCase struct {
	userRepo     user.Repository
	emailService EmailService
	tokenConfig  config.TokenConfig
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	emailService EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		tokenConfig:  tokenConfig,
		logger:       logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil
	}
	if existingUser == nil {
		uc.logger.Infow("password reset requested for unknown email", "email", email)
		return nil
	}

	ttl := time.Duration(uc.tokenConfig.ResetExpiresMinutes) * time.Minute
	token, err := existingUser.GeneratePasswordResetToken(ttl)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err, "user_id", existingUser.ID())
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to store reset token", "error", err, "user_id", existingUser.ID())
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := uc.emailService.SendPasswordResetEmail(email, existingUser.Name(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send password reset email", "error", err, "user_id", existingUser.ID())
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())

	return nil
}
