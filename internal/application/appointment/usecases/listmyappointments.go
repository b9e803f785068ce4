package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ListMyAppointmentsCommand struct {
	UserID uint
	Role   authorization.UserRole
	Status string
}

type ListMyAppointmentsUseCase struct {
	appointmentRepo appointment.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewListMyAppointmentsUseCase(
	appointmentRepo appointment.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMyAppointmentsUseCase {
	return &ListMyAppointmentsUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (uc *ListMyAppointmentsUseCase) Execute(ctx context.Context, cmd ListMyAppointmentsCommand) ([]AppointmentDetails, error) {
	var filter appointment.Filter
	if cmd.Status != "" {
		status := vo.Status(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", cmd.Status))
		}
		filter.Status = &status
	}

	var (
		appointments []*appointment.Appointment
		err          error
	)
	switch {
	case cmd.Role.IsStudent():
		appointments, err = uc.appointmentRepo.ListByStudent(ctx, cmd.UserID, filter)
	case cmd.Role.IsFaculty():
		appointments, err = uc.appointmentRepo.ListByFaculty(ctx, cmd.UserID, filter)
	default:
		return nil, errors.NewForbiddenError("appointment listing is limited to students and faculty")
	}
	if err != nil {
		uc.logger.Errorw("failed to list appointments", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return loadDetails(ctx, uc.userRepo, appointments)
}
