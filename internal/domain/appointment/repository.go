package appointment

import (
	"context"
	"time"

	vo "campusdesk/internal/domain/appointment/valueobjects"
)

// Filter narrows appointment listings.
type Filter struct {
	Status *vo.Status
}

// Repository persists appointment aggregates.
//
// Update performs a plain read-then-write without optimistic versioning;
// concurrent transitions of the same appointment are last-writer-wins.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uint) (*Appointment, error)

	// ExistsActiveSlot reports whether an appointment with status pending or
	// approved already occupies the exact (faculty, date, time) triple.
	// Duration is deliberately not consulted: overlapping but non-identical
	// slots do not conflict.
	ExistsActiveSlot(ctx context.Context, facultyID uint, date time.Time, timeOfDay string) (bool, error)

	ListByStudent(ctx context.Context, studentID uint, filter Filter) ([]*Appointment, error)
	ListByFaculty(ctx context.Context, facultyID uint, filter Filter) ([]*Appointment, error)
}
