package complaint

import (
	"context"

	"campusdesk/internal/application/complaint/usecases"
)

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.ComplaintDetails, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetComplaintCommand) (*usecases.ComplaintDetails, error)
}

type ListMyComplaintsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListMyComplaintsCommand) ([]usecases.ComplaintDetails, error)
}

type ListAllComplaintsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListAllComplaintsCommand) ([]usecases.ComplaintDetails, error)
}

type UpdateComplaintStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateComplaintStatusCommand) (*usecases.ComplaintDetails, error)
}

type DeleteComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteComplaintCommand) error
}
