package complaint

import (
	"context"

	vo "campusdesk/internal/domain/complaint/valueobjects"
)

// Filter narrows complaint listings. Nil fields match everything.
type Filter struct {
	Status   *vo.Status
	Category *vo.Category
	Priority *vo.Priority
}

type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	ListByReporter(ctx context.Context, reporterID uint, filter Filter) ([]*Complaint, error)
	ListAll(ctx context.Context, filter Filter) ([]*Complaint, error)
}
