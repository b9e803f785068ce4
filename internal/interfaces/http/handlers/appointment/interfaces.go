package appointment

import (
	"context"

	"campusdesk/internal/application/appointment/usecases"
	"campusdesk/internal/domain/user"
)

type BookAppointmentExecutor interface {
	Execute(ctx context.Context, cmd usecases.BookAppointmentCommand) (*usecases.AppointmentDetails, error)
}

type TransitionAppointmentExecutor interface {
	Execute(ctx context.Context, cmd usecases.TransitionAppointmentCommand) (*usecases.AppointmentDetails, error)
}

type GetAppointmentExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetAppointmentCommand) (*usecases.AppointmentDetails, error)
}

type ListMyAppointmentsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListMyAppointmentsCommand) ([]usecases.AppointmentDetails, error)
}

type ListPendingAppointmentsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListPendingAppointmentsCommand) ([]usecases.AppointmentDetails, error)
}

type ListRegisteredFacultyExecutor interface {
	Execute(ctx context.Context) ([]*user.User, error)
}
