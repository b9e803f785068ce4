package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/appointment"
	"campusdesk/internal/domain/directory"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

type mockAppointmentRepository struct {
	CreateFunc           func(ctx context.Context, a *appointment.Appointment) error
	UpdateFunc           func(ctx context.Context, a *appointment.Appointment) error
	GetByIDFunc          func(ctx context.Context, id uint) (*appointment.Appointment, error)
	ExistsActiveSlotFunc func(ctx context.Context, facultyID uint, date time.Time, timeOfDay string) (bool, error)
	ListByStudentFunc    func(ctx context.Context, studentID uint, filter appointment.Filter) ([]*appointment.Appointment, error)
	ListByFacultyFunc    func(ctx context.Context, facultyID uint, filter appointment.Filter) ([]*appointment.Appointment, error)
}

func (m *mockAppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAppointmentRepository) GetByID(ctx context.Context, id uint) (*appointment.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) ExistsActiveSlot(ctx context.Context, facultyID uint, date time.Time, timeOfDay string) (bool, error) {
	if m.ExistsActiveSlotFunc != nil {
		return m.ExistsActiveSlotFunc(ctx, facultyID, date, timeOfDay)
	}
	return false, nil
}

func (m *mockAppointmentRepository) ListByStudent(ctx context.Context, studentID uint, filter appointment.Filter) ([]*appointment.Appointment, error) {
	if m.ListByStudentFunc != nil {
		return m.ListByStudentFunc(ctx, studentID, filter)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) ListByFaculty(ctx context.Context, facultyID uint, filter appointment.Filter) ([]*appointment.Appointment, error) {
	if m.ListByFacultyFunc != nil {
		return m.ListByFacultyFunc(ctx, facultyID, filter)
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

type mockProfileRepository struct {
	CreateFunc     func(ctx context.Context, p *directory.Profile) error
	GetByIDFunc    func(ctx context.Context, id uint) (*directory.Profile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*directory.Profile, error)
	ListFunc       func(ctx context.Context) ([]*directory.Profile, error)
}

func (m *mockProfileRepository) Create(ctx context.Context, p *directory.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*directory.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*directory.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) List(ctx context.Context) ([]*directory.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	SendAppointmentRequestedEmailFunc func(data AppointmentEmailData) error
	SendAppointmentStatusEmailFunc    func(data AppointmentEmailData) error
}

func (m *mockNotifier) SendAppointmentRequestedEmail(data AppointmentEmailData) error {
	if m.SendAppointmentRequestedEmailFunc != nil {
		return m.SendAppointmentRequestedEmailFunc(data)
	}
	return nil
}

func (m *mockNotifier) SendAppointmentStatusEmail(data AppointmentEmailData) error {
	if m.SendAppointmentStatusEmailFunc != nil {
		return m.SendAppointmentStatusEmailFunc(data)
	}
	return nil
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
