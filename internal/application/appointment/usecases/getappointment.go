package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/appointment"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetAppointmentCommand struct {
	AppointmentID uint
	ActorID       uint
	ActorRole     authorization.UserRole
}

type GetAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewGetAppointmentUseCase(
	appointmentRepo appointment.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetAppointmentUseCase {
	return &GetAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (uc *GetAppointmentUseCase) Execute(ctx context.Context, cmd GetAppointmentCommand) (*AppointmentDetails, error) {
	appt, err := uc.appointmentRepo.GetByID(ctx, cmd.AppointmentID)
	if err != nil {
		uc.logger.Errorw("failed to load appointment", "error", err, "appointment_id", cmd.AppointmentID)
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, errors.NewNotFoundError("Appointment not found")
	}

	if !appt.InvolvesUser(cmd.ActorID) && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("Not authorized to view this appointment")
	}

	allDetails, err := loadDetails(ctx, uc.userRepo, []*appointment.Appointment{appt})
	if err != nil {
		uc.logger.Errorw("failed to load appointment parties", "error", err, "appointment_id", appt.ID())
		return nil, err
	}
	return &allDetails[0], nil
}
