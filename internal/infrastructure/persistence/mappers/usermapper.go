// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"fmt"
	"time"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:             u.ID(),
		Name:           u.Name(),
		Email:          u.Email().String(),
		PasswordHash:   u.PasswordHash(),
		Role:           u.Role().String(),
		ResetTokenHash: u.ResetTokenHash(),
		CreatedAt:      u.CreatedAt().UnixMilli(),
		UpdatedAt:      u.UpdatedAt().UnixMilli(),
	}

	if u.ResetTokenExpiry() != nil {
		expiry := u.ResetTokenExpiry().UnixMilli()
		model.ResetTokenExpiry = &expiry
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email for user %d: %w", model.ID, err)
	}

	role, ok := authorization.ParseUserRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("invalid stored role for user %d: %s", model.ID, model.Role)
	}

	var resetTokenExpiry *time.Time
	if model.ResetTokenExpiry != nil {
		expiry := time.UnixMilli(*model.ResetTokenExpiry)
		resetTokenExpiry = &expiry
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		role,
		model.ResetTokenHash,
		resetTokenExpiry,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
