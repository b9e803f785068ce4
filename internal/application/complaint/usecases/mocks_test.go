package usecases

import (
	"context"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

type mockComplaintRepository struct {
	CreateFunc         func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc         func(ctx context.Context, c *complaint.Complaint) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*complaint.Complaint, error)
	ListByReporterFunc func(ctx context.Context, reporterID uint, filter complaint.Filter) ([]*complaint.Complaint, error)
	ListAllFunc        func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error)
}

func (m *mockComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListByReporter(ctx context.Context, reporterID uint, filter complaint.Filter) ([]*complaint.Complaint, error) {
	if m.ListByReporterFunc != nil {
		return m.ListByReporterFunc(ctx, reporterID, filter)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListAll(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, filter)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc              func(ctx context.Context, u *user.User) error
	UpdateFunc              func(ctx context.Context, u *user.User) error
	GetByIDFunc             func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc          func(ctx context.Context, email string) (*user.User, error)
	GetByEmailAndRoleFunc   func(ctx context.Context, email string, role authorization.UserRole) (*user.User, error)
	GetByResetTokenHashFunc func(ctx context.Context, tokenHash string) (*user.User, error)
	ListByRoleFunc          func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmailAndRole(ctx context.Context, email string, role authorization.UserRole) (*user.User, error) {
	if m.GetByEmailAndRoleFunc != nil {
		return m.GetByEmailAndRoleFunc(ctx, email, role)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	if m.GetByResetTokenHashFunc != nil {
		return m.GetByResetTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
