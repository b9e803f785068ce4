package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/application/appointment/services"
	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/goroutine"
	"campusdesk/internal/shared/logger"
)

const slotTakenMessage = "This time slot is already booked"

type BookAppointmentCommand struct {
	StudentID  uint
	FacultyRef uint
	Date       time.Time
	TimeOfDay  string
	Duration   int
	Reason     string
}

type BookAppointmentUseCase struct {
	appointmentRepo appointment.Repository
	userRepo        user.Repository
	facultyResolver *services.FacultyResolver
	notifier        Notifier
	logger          logger.Interface
}

func NewBookAppointmentUseCase(
	appointmentRepo appointment.Repository,
	userRepo user.Repository,
	facultyResolver *services.FacultyResolver,
	notifier Notifier,
	logger logger.Interface,
) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		facultyResolver: facultyResolver,
		notifier:        notifier,
		logger:          logger,
	}
}

func (uc *BookAppointmentUseCase) Execute(ctx context.Context, cmd BookAppointmentCommand) (*AppointmentDetails, error) {
	student, err := uc.userRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to load student account", "error", err, "student_id", cmd.StudentID)
		return nil, fmt.Errorf("failed to load student account: %w", err)
	}
	if student == nil {
		return nil, errors.NewNotFoundError("student account not found")
	}
	if !student.Role().IsStudent() {
		return nil, errors.NewForbiddenError("Only students can create appointments")
	}

	faculty, err := uc.facultyResolver.Resolve(ctx, cmd.FacultyRef)
	if err != nil {
		return nil, err
	}

	newAppointment, err := appointment.NewAppointment(
		student.ID(),
		faculty.ID(),
		cmd.Date,
		cmd.TimeOfDay,
		vo.Duration(cmd.Duration),
		cmd.Reason,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if newAppointment.StartTime().Before(time.Now()) {
		return nil, errors.NewValidationError("Cannot book appointments in the past")
	}

	taken, err := uc.appointmentRepo.ExistsActiveSlot(ctx, faculty.ID(), newAppointment.Date(), newAppointment.TimeOfDay())
	if err != nil {
		uc.logger.Errorw("failed to check slot availability", "error", err, "faculty_id", faculty.ID())
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if taken {
		return nil, errors.NewConflictError(slotTakenMessage)
	}

	if err := uc.appointmentRepo.Create(ctx, newAppointment); err != nil {
		// Two requests may pass the pre-check together; the unique index on
		// active slots turns the loser into a duplicate-key error.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(slotTakenMessage)
		}
		uc.logger.Errorw("failed to create appointment", "error", err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	details := AppointmentDetails{Appointment: newAppointment, Student: student, Faculty: faculty}

	data := emailData(details)
	goroutine.SafeGo(uc.logger, "appointment-requested-email", func() {
		if err := uc.notifier.SendAppointmentRequestedEmail(data); err != nil {
			uc.logger.Warnw("failed to send appointment notification email",
				"error", err, "appointment_id", newAppointment.ID())
		}
	})

	uc.logger.Infow("appointment requested",
		"appointment_id", newAppointment.ID(),
		"student_id", student.ID(),
		"faculty_id", faculty.ID())

	return &details, nil
}
