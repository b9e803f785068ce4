package auth

import (
	"context"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/domain/user"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetCurrentUserCommand) (*user.User, error)
}

type RequestPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) (*usecases.AuthResult, error)
}
