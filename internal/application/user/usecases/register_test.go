package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/errors"
)

func testCampusConfig() config.CampusConfig {
	return config.CampusConfig{AllowedEmailDomains: vo.DefaultAllowedDomains}
}

func reconstructTestUser(t *testing.T, id uint, emailAddr string, role authorization.UserRole) *user.User {
	t.Helper()
	email, err := vo.NewCollegeEmail(emailAddr, nil)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, "Test User", email, "hashed:secret1", role, "", nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var created *user.User
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			require.NoError(t, u.SetID(42))
			created = u
			return nil
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, testCampusConfig(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "Asha Rao",
		Email:    "Asha.Rao@MUJ.Manipal.Edu",
		Password: "secret1",
		Role:     "student",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, created)
	assert.Equal(t, uint(42), result.User.ID())
	assert.Equal(t, "asha.rao@muj.manipal.edu", result.User.Email().String())
	assert.Equal(t, authorization.RoleStudent, result.User.Role())
	assert.Equal(t, "hashed:secret1", result.User.PasswordHash())
	assert.Equal(t, "token", result.AccessToken)
}

func TestRegisterUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"non-college email", RegisterCommand{Name: "A", Email: "a@gmail.com", Password: "secret1", Role: "student"}},
		{"admin role not registerable", RegisterCommand{Name: "A", Email: "a@muj.manipal.edu", Password: "secret1", Role: "admin"}},
		{"unknown role", RegisterCommand{Name: "A", Email: "a@muj.manipal.edu", Password: "secret1", Role: "staff"}},
		{"short password", RegisterCommand{Name: "A", Email: "a@muj.manipal.edu", Password: "abc", Role: "student"}},
		{"missing name", RegisterCommand{Name: "", Email: "a@muj.manipal.edu", Password: "secret1", Role: "student"}},
	}

	useCase := NewRegisterUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, testCampusConfig(), &mockLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterUseCase_Execute_DuplicateEmail(t *testing.T) {
	existing := reconstructTestUser(t, 1, "a@muj.manipal.edu", authorization.RoleStudent)
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, testCampusConfig(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "A",
		Email:    "a@muj.manipal.edu",
		Password: "secret1",
		Role:     "student",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUseCase_Execute_DuplicateKeyRace(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return assert.AnError
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, testCampusConfig(), &mockLogger{})
	_, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "A",
		Email:    "a@muj.manipal.edu",
		Password: "secret1",
		Role:     "student",
	})

	require.Error(t, err)
	assert.False(t, errors.IsConflictError(err))
}
