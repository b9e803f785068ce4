package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/complaint/valueobjects"
	"campusdesk/internal/shared/errors"
)

// ComplaintDetails pairs a complaint with its reporter and, when assigned,
// the assignee account.
type ComplaintDetails struct {
	Complaint *complaint.Complaint
	Reporter  *user.User
	Assignee  *user.User
}

func loadDetails(ctx context.Context, userRepo user.Repository, complaints []*complaint.Complaint) ([]ComplaintDetails, error) {
	cache := make(map[uint]*user.User)
	lookup := func(id uint) (*user.User, error) {
		if u, ok := cache[id]; ok {
			return u, nil
		}
		u, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load account %d: %w", id, err)
		}
		cache[id] = u
		return u, nil
	}

	details := make([]ComplaintDetails, 0, len(complaints))
	for _, c := range complaints {
		reporter, err := lookup(c.ReporterID())
		if err != nil {
			return nil, err
		}
		d := ComplaintDetails{Complaint: c, Reporter: reporter}
		if c.AssigneeID() != nil {
			if d.Assignee, err = lookup(*c.AssigneeID()); err != nil {
				return nil, err
			}
		}
		details = append(details, d)
	}
	return details, nil
}

// parseFilter validates the optional status/category/priority query values.
func parseFilter(status, category, priority string) (complaint.Filter, error) {
	var filter complaint.Filter
	if status != "" {
		s := vo.Status(status)
		if !s.IsValid() {
			return filter, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", status))
		}
		filter.Status = &s
	}
	if category != "" {
		c := vo.Category(category)
		if !c.IsValid() {
			return filter, errors.NewValidationError(fmt.Sprintf("invalid category filter: %s", category))
		}
		filter.Category = &c
	}
	if priority != "" {
		p := vo.Priority(priority)
		if !p.IsValid() {
			return filter, errors.NewValidationError(fmt.Sprintf("invalid priority filter: %s", priority))
		}
		filter.Priority = &p
	}
	return filter, nil
}
