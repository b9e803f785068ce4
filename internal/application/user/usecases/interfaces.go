package usecases

import (
	"campusdesk/internal/shared/authorization"
)

// EmailService delivers account mail. Implementations log and swallow
// transport errors only when the caller decides delivery is non-critical.
type EmailService interface {
	SendPasswordResetEmail(to, name, token string) error
}

type TokenResult struct {
	AccessToken string
	ExpiresIn   int64
}

type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenResult, error)
}
