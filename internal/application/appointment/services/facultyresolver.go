// Package services holds application services shared by the appointment
// use cases.
package services

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// FacultyResolver maps a faculty reference from a booking request to a
// registered faculty account. The reference may be a directory profile id
// or an account id; the directory is consulted first and the profile's
// normalized email links it to the account.
type FacultyResolver struct {
	profileRepo directory.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewFacultyResolver(
	profileRepo directory.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *FacultyResolver {
	return &FacultyResolver{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (r *FacultyResolver) Resolve(ctx context.Context, facultyRef uint) (*user.User, error) {
	profile, err := r.profileRepo.GetByID(ctx, facultyRef)
	if err != nil {
		r.logger.Errorw("failed to look up faculty profile", "error", err, "faculty_ref", facultyRef)
		return nil, fmt.Errorf("failed to look up faculty profile: %w", err)
	}

	if profile != nil {
		account, err := r.userRepo.GetByEmailAndRole(ctx, profile.Email(), authorization.RoleFaculty)
		if err != nil {
			r.logger.Errorw("failed to look up faculty account", "error", err, "email", profile.Email())
			return nil, fmt.Errorf("failed to look up faculty account: %w", err)
		}
		if account == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf(
				"Faculty member %q is not registered in the system. Please ask them to sign up with email: %s",
				profile.Name(), profile.Email()))
		}
		return account, nil
	}

	account, err := r.userRepo.GetByID(ctx, facultyRef)
	if err != nil {
		r.logger.Errorw("failed to look up faculty account", "error", err, "faculty_ref", facultyRef)
		return nil, fmt.Errorf("failed to look up faculty account: %w", err)
	}
	if account == nil || !account.Role().IsFaculty() {
		return nil, errors.NewNotFoundError("Faculty not found. Please ensure the faculty member has signed up in the app.")
	}
	return account, nil
}
