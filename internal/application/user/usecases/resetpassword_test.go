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
	"campusdesk/internal/shared/errors"
)

func userWithResetToken(t *testing.T, expiry time.Time) (*user.User, string) {
	t.Helper()
	email, err := vo.NewCollegeEmail("a@muj.manipal.edu", nil)
	require.NoError(t, err)

	token, err := vo.GenerateToken()
	require.NoError(t, err)

	u, err := user.ReconstructUser(3, "Test User", email, "hashed:old", authorization.RoleStudent,
		token.Hash(), &expiry, time.Now(), time.Now())
	require.NoError(t, err)
	return u, token.Value()
}

func TestResetPasswordUseCase_Execute_Success(t *testing.T) {
	existing, plainToken := userWithResetToken(t, time.Now().Add(10*time.Minute))

	var updated *user.User
	mockRepo := &mockUserRepository{
		GetByResetTokenHashFunc: func(ctx context.Context, tokenHash string) (*user.User, error) {
			assert.Equal(t, vo.HashToken(plainToken), tokenHash)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}

	useCase := NewResetPasswordUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ResetPasswordCommand{
		Token:       plainToken,
		NewPassword: "newsecret",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "hashed:newsecret", updated.PasswordHash())
	assert.Empty(t, updated.ResetTokenHash(), "token is single use")
	assert.Nil(t, updated.ResetTokenExpiry())
	assert.Equal(t, "token", result.AccessToken, "reset logs the account in")
}

func TestResetPasswordUseCase_Execute_InvalidToken(t *testing.T) {
	expired, expiredToken := userWithResetToken(t, time.Now().Add(-time.Minute))

	tests := []struct {
		name  string
		token string
		repo  *mockUserRepository
	}{
		{
			name:  "unknown token",
			token: "deadbeef",
			repo:  &mockUserRepository{},
		},
		{
			name:  "expired token",
			token: expiredToken,
			repo: &mockUserRepository{
				GetByResetTokenHashFunc: func(ctx context.Context, tokenHash string) (*user.User, error) {
					return expired, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewResetPasswordUseCase(tt.repo, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), ResetPasswordCommand{
				Token:       tt.token,
				NewPassword: "newsecret",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestResetPasswordUseCase_Execute_WeakPassword(t *testing.T) {
	useCase := NewResetPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ResetPasswordCommand{
		Token:       "whatever",
		NewPassword: "abc",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
