package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/domain/directory"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type TransitionAppointmentCommand struct {
	AppointmentID uint
	ActorID       uint
	NewStatus     string
	FacultyNotes  string
	MeetingLink   string
}

type TransitionAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	userRepo        user.Repository
	profileRepo     directory.Repository
	notifier        Notifier
	logger          logger.Interface
}

func NewTransitionAppointmentUseCase(
	appointmentRepo appointment.Repository,
	userRepo user.Repository,
	profileRepo directory.Repository,
	notifier Notifier,
	logger logger.Interface,
) *TransitionAppointmentUseCase {
	return &TransitionAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (uc *TransitionAppointmentUseCase) Execute(ctx context.Context, cmd TransitionAppointmentCommand) (*AppointmentDetails, error) {
	newStatus := vo.Status(cmd.NewStatus)
	if !newStatus.IsRequestable() {
		return nil, errors.NewValidationError("Invalid status. Use: approved, rejected, or cancelled")
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, cmd.AppointmentID)
	if err != nil {
		uc.logger.Errorw("failed to load appointment", "error", err, "appointment_id", cmd.AppointmentID)
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, errors.NewNotFoundError("Appointment not found")
	}

	if err := uc.authorize(ctx, appt, cmd.ActorID, newStatus); err != nil {
		return nil, err
	}

	if err := appt.TransitionTo(newStatus); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if cmd.FacultyNotes != "" {
		appt.SetFacultyNotes(cmd.FacultyNotes)
	}
	if cmd.MeetingLink != "" {
		appt.SetMeetingLink(cmd.MeetingLink)
	}

	if err := uc.appointmentRepo.Update(ctx, appt); err != nil {
		uc.logger.Errorw("failed to update appointment", "error", err, "appointment_id", appt.ID())
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	allDetails, err := loadDetails(ctx, uc.userRepo, []*appointment.Appointment{appt})
	if err != nil {
		uc.logger.Errorw("failed to load appointment parties", "error", err, "appointment_id", appt.ID())
		return nil, err
	}
	details := allDetails[0]

	// The student is told about the decision before the response returns,
	// but a failed mail never fails the transition.
	if details.Student != nil {
		if err := uc.notifier.SendAppointmentStatusEmail(emailData(details)); err != nil {
			uc.logger.Warnw("failed to send appointment status email",
				"error", err, "appointment_id", appt.ID())
		}
	}

	uc.logger.Infow("appointment status changed",
		"appointment_id", appt.ID(),
		"status", newStatus.String(),
		"actor_id", cmd.ActorID)

	return &details, nil
}

// authorize enforces who may request each transition: approve and reject
// belong to the appointment's faculty, who must still hold the faculty role
// and appear in the directory; cancel belongs to either party.
func (uc *TransitionAppointmentUseCase) authorize(ctx context.Context, appt *appointment.Appointment, actorID uint, newStatus vo.Status) error {
	if newStatus == vo.StatusCancelled {
		if !appt.InvolvesUser(actorID) {
			return errors.NewForbiddenError("Not authorized to cancel this appointment")
		}
		return nil
	}

	if appt.FacultyID() != actorID {
		return errors.NewForbiddenError("Only faculty can approve or reject appointments")
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		uc.logger.Errorw("failed to load acting account", "error", err, "actor_id", actorID)
		return fmt.Errorf("failed to load acting account: %w", err)
	}
	if actor == nil || !actor.Role().IsFaculty() {
		return errors.NewForbiddenError("Only faculty members can approve or reject appointments")
	}

	profile, err := uc.profileRepo.GetByEmail(ctx, actor.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to look up faculty profile", "error", err, "actor_id", actorID)
		return fmt.Errorf("failed to look up faculty profile: %w", err)
	}
	if profile == nil {
		return errors.NewForbiddenError("Only faculty members registered in the faculty directory can approve appointments. Please contact the administrator.")
	}

	return nil
}
