package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type stubProfileRepo struct {
	directory.Repository
	profile *directory.Profile
}

func (s *stubProfileRepo) GetByID(ctx context.Context, id uint) (*directory.Profile, error) {
	if s.profile != nil && s.profile.ID() == id {
		return s.profile, nil
	}
	return nil, nil
}

type stubUserRepo struct {
	user.Repository
	account *user.User
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if s.account != nil && s.account.ID() == id {
		return s.account, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmailAndRole(ctx context.Context, email string, role authorization.UserRole) (*user.User, error) {
	if s.account != nil && s.account.Email().String() == email && s.account.Role() == role {
		return s.account, nil
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func makeAccount(t *testing.T, id uint, emailAddr string, role authorization.UserRole) *user.User {
	t.Helper()
	email, err := uservo.NewCollegeEmail(emailAddr, nil)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, "Dr. Meera Iyer", email, "hash", role, "", nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func makeProfile(t *testing.T, id uint, emailAddr string) *directory.Profile {
	t.Helper()
	p, err := directory.ReconstructProfile(id, "Dr. Meera Iyer", "CSE", emailAddr, "Professor", "", "", "", time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestFacultyResolver_Resolve_ViaProfile(t *testing.T) {
	account := makeAccount(t, 2, "m.iyer@muj.manipal.edu", authorization.RoleFaculty)
	profile := makeProfile(t, 30, "M.Iyer@MUJ.Manipal.Edu")

	resolver := NewFacultyResolver(
		&stubProfileRepo{profile: profile},
		&stubUserRepo{account: account},
		nopLogger{},
	)

	resolved, err := resolver.Resolve(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, account, resolved, "profile email links to the account despite case differences")
}

func TestFacultyResolver_Resolve_ProfileWithoutAccount(t *testing.T) {
	profile := makeProfile(t, 30, "m.iyer@muj.manipal.edu")

	resolver := NewFacultyResolver(
		&stubProfileRepo{profile: profile},
		&stubUserRepo{},
		nopLogger{},
	)

	_, err := resolver.Resolve(context.Background(), 30)

	require.Error(t, err)
	require.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, errors.GetAppError(err).Message, "is not registered in the system")
}

func TestFacultyResolver_Resolve_DirectAccountID(t *testing.T) {
	account := makeAccount(t, 2, "m.iyer@muj.manipal.edu", authorization.RoleFaculty)

	resolver := NewFacultyResolver(
		&stubProfileRepo{},
		&stubUserRepo{account: account},
		nopLogger{},
	)

	resolved, err := resolver.Resolve(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, account, resolved)
}

func TestFacultyResolver_Resolve_NotFound(t *testing.T) {
	student := makeAccount(t, 2, "s.patel@muj.manipal.edu", authorization.RoleStudent)

	tests := []struct {
		name string
		repo *stubUserRepo
	}{
		{"no account at all", &stubUserRepo{}},
		{"account is not faculty", &stubUserRepo{account: student}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewFacultyResolver(&stubProfileRepo{}, tt.repo, nopLogger{})

			_, err := resolver.Resolve(context.Background(), 2)

			require.Error(t, err)
			require.True(t, errors.IsNotFoundError(err))
			assert.Equal(t, "Faculty not found. Please ensure the faculty member has signed up in the app.", errors.GetAppError(err).Message)
		})
	}
}
