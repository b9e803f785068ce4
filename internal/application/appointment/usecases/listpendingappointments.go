package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type ListPendingAppointmentsCommand struct {
	FacultyID uint
}

// ListPendingAppointmentsUseCase lists a faculty member's own pending
// requests. The faculty role is enforced at the route.
type ListPendingAppointmentsUseCase struct {
	appointmentRepo appointment.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewListPendingAppointmentsUseCase(
	appointmentRepo appointment.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListPendingAppointmentsUseCase {
	return &ListPendingAppointmentsUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (uc *ListPendingAppointmentsUseCase) Execute(ctx context.Context, cmd ListPendingAppointmentsCommand) ([]AppointmentDetails, error) {
	pending := vo.StatusPending
	appointments, err := uc.appointmentRepo.ListByFaculty(ctx, cmd.FacultyID, appointment.Filter{Status: &pending})
	if err != nil {
		uc.logger.Errorw("failed to list pending appointments", "error", err, "faculty_id", cmd.FacultyID)
		return nil, fmt.Errorf("failed to list pending appointments: %w", err)
	}

	return loadDetails(ctx, uc.userRepo, appointments)
}
