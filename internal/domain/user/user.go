// Package user holds the registered-account aggregate. An account is a
// student or faculty identity with a college email and hashed credential.
package user

import (
	"fmt"
	"time"

	"campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
)

type User struct {
	id               uint
	name             string
	email            *valueobjects.Email
	passwordHash     string
	role             authorization.UserRole
	resetTokenHash   string
	resetTokenExpiry *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(name string, email *valueobjects.Email, passwordHash string, role authorization.UserRole) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsRegisterable() {
		return nil, fmt.Errorf(`role must be either "faculty" or "student"`)
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email *valueobjects.Email,
	passwordHash string,
	role authorization.UserRole,
	resetTokenHash string,
	resetTokenExpiry *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:               id,
		name:             name,
		email:            email,
		passwordHash:     passwordHash,
		role:             role,
		resetTokenHash:   resetTokenHash,
		resetTokenExpiry: resetTokenExpiry,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Name() string                  { return u.name }
func (u *User) Email() *valueobjects.Email    { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) ResetTokenHash() string        { return u.resetTokenHash }
func (u *User) ResetTokenExpiry() *time.Time  { return u.resetTokenExpiry }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// GeneratePasswordResetToken issues a fresh reset token valid for ttl.
// The returned token carries the plaintext value for email delivery; only
// its hash is stored on the aggregate.
func (u *User) GeneratePasswordResetToken(ttl time.Duration) (*valueobjects.Token, error) {
	token, err := valueobjects.GenerateToken()
	if err != nil {
		return nil, err
	}

	expiry := time.Now().Add(ttl)
	u.resetTokenHash = token.Hash()
	u.resetTokenExpiry = &expiry
	u.updatedAt = time.Now()

	return token, nil
}

// HasValidResetToken reports whether the stored reset token matches the
// given plaintext token and has not expired.
func (u *User) HasValidResetToken(plainToken string, now time.Time) bool {
	if u.resetTokenHash == "" || u.resetTokenExpiry == nil {
		return false
	}
	if now.After(*u.resetTokenExpiry) {
		return false
	}
	return valueobjects.HashToken(plainToken) == u.resetTokenHash
}

// ResetPassword replaces the credential and invalidates the reset token.
func (u *User) ResetPassword(newPasswordHash string) error {
	if newPasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newPasswordHash
	u.resetTokenHash = ""
	u.resetTokenExpiry = nil
	u.updatedAt = time.Now()
	return nil
}
