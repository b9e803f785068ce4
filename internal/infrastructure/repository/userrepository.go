// Package repository contains the gorm-backed implementations of the domain
// repository interfaces. Lookups translate gorm.ErrRecordNotFound into
// (nil, nil) so the application layer can treat absence as a business case
// rather than an infrastructure failure.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

// UserRepository implements user.Repository on top of gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email, "role", model.Role)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":               model.Name,
		"email":              model.Email,
		"password_hash":      model.PasswordHash,
		"role":               model.Role,
		"reset_token_hash":   model.ResetTokenHash,
		"reset_token_expiry": model.ResetTokenExpiry,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d not found", model.ID)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	normalized := strings.ToLower(strings.TrimSpace(email))

	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "email", normalized, "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email string, role authorization.UserRole) (*user.User, error) {
	var model models.UserModel
	normalized := strings.ToLower(strings.TrimSpace(email))

	if err := r.db.WithContext(ctx).Where("email = ? AND role = ?", normalized, role.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email and role", "email", normalized, "role", role, "error", err)
		return nil, fmt.Errorf("failed to get user by email and role: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	if tokenHash == "" {
		return nil, nil
	}

	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("reset_token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by reset token", "error", err)
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	var userModels []*models.UserModel

	if err := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("name").Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users by role", "role", role, "error", err)
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map user model, skipping", "id", model.ID, "error", err)
			continue
		}
		users = append(users, entity)
	}

	return users, nil
}
