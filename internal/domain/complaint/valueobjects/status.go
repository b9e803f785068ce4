package valueobjects

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether the status stamps a resolution time on entry.
// Unlike appointments, complaints have no transition restrictions: any
// status may follow any other.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}
