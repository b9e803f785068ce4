package user

import (
	"context"

	"campusdesk/internal/shared/authorization"
)

// Repository persists account aggregates. Implementations return (nil, nil)
// when no record matches a lookup.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailAndRole(ctx context.Context, email string, role authorization.UserRole) (*User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
