package valueobjects

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	// StatusCompleted exists as a stored value for historical records but is
	// never produced by the transition API.
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the appointment still occupies its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// IsRequestable reports whether the status may be requested through the
// transition API.
func (s Status) IsRequestable() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo encodes the appointment lifecycle: a pending appointment
// may be approved, rejected or cancelled; an approved one may still be
// cancelled; rejected and cancelled are final.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected || target == StatusCancelled
	case StatusApproved:
		return target == StatusCancelled
	default:
		return false
	}
}

// ActiveStatuses lists the statuses that block a slot from being rebooked.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved}
}
