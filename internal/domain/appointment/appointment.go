// Package appointment holds the appointment aggregate and its lifecycle
// rules: pending -> approved | rejected | cancelled, approved -> cancelled,
// with rejected and cancelled final.
package appointment

import (
	"fmt"
	"regexp"
	"time"

	vo "campusdesk/internal/domain/appointment/valueobjects"
)

// timeOfDayRegex matches the wire format for slot times, e.g. "14:30".
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Appointment struct {
	id           uint
	studentID    uint
	facultyID    uint
	date         time.Time
	timeOfDay    string
	duration     vo.Duration
	reason       string
	status       vo.Status
	meetingLink  string
	facultyNotes string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAppointment(
	studentID uint,
	facultyID uint,
	date time.Time,
	timeOfDay string,
	duration vo.Duration,
	reason string,
) (*Appointment, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if facultyID == 0 {
		return nil, fmt.Errorf("faculty ID is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("appointment date is required")
	}
	if !ValidTimeOfDay(timeOfDay) {
		return nil, fmt.Errorf("appointment time must be in HH:MM format")
	}
	if !duration.IsValid() {
		return nil, fmt.Errorf("duration must be one of 15, 30, 45 or 60 minutes")
	}
	if reason == "" {
		return nil, fmt.Errorf("reason for appointment is required")
	}

	now := time.Now()
	return &Appointment{
		studentID: studentID,
		facultyID: facultyID,
		date:      NormalizeDate(date),
		timeOfDay: timeOfDay,
		duration:  duration,
		reason:    reason,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppointment(
	id uint,
	studentID uint,
	facultyID uint,
	date time.Time,
	timeOfDay string,
	duration vo.Duration,
	reason string,
	status vo.Status,
	meetingLink string,
	facultyNotes string,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if id == 0 {
		return nil, fmt.Errorf("appointment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Appointment{
		id:           id,
		studentID:    studentID,
		facultyID:    facultyID,
		date:         date,
		timeOfDay:    timeOfDay,
		duration:     duration,
		reason:       reason,
		status:       status,
		meetingLink:  meetingLink,
		facultyNotes: facultyNotes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Appointment) ID() uint             { return a.id }
func (a *Appointment) StudentID() uint      { return a.studentID }
func (a *Appointment) FacultyID() uint      { return a.facultyID }
func (a *Appointment) Date() time.Time      { return a.date }
func (a *Appointment) TimeOfDay() string    { return a.timeOfDay }
func (a *Appointment) Duration() vo.Duration { return a.duration }
func (a *Appointment) Reason() string       { return a.reason }
func (a *Appointment) Status() vo.Status    { return a.status }
func (a *Appointment) MeetingLink() string  { return a.meetingLink }
func (a *Appointment) FacultyNotes() string { return a.facultyNotes }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Appointment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("appointment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("appointment ID cannot be zero")
	}
	a.id = id
	return nil
}

// TransitionTo moves the appointment to newStatus, enforcing lifecycle rules.
func (a *Appointment) TransitionTo(newStatus vo.Status) error {
	if !newStatus.IsRequestable() {
		return fmt.Errorf("invalid status: use approved, rejected, or cancelled")
	}
	if !a.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition appointment from %s to %s", a.status, newStatus)
	}

	a.status = newStatus
	a.updatedAt = time.Now()
	return nil
}

func (a *Appointment) SetFacultyNotes(notes string) {
	a.facultyNotes = notes
	a.updatedAt = time.Now()
}

func (a *Appointment) SetMeetingLink(link string) {
	a.meetingLink = link
	a.updatedAt = time.Now()
}

// InvolvesUser reports whether userID is the student or faculty party.
func (a *Appointment) InvolvesUser(userID uint) bool {
	return a.studentID == userID || a.facultyID == userID
}

// StartTime combines the calendar date with the time-of-day string.
func (a *Appointment) StartTime() time.Time {
	return CombineDateTime(a.date, a.timeOfDay)
}

// NormalizeDate truncates a timestamp to its calendar date, preserving the
// location so that slot equality is date-exact.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CombineDateTime merges a calendar date with an "HH:MM" time-of-day. An
// invalid time-of-day yields the bare date.
func CombineDateTime(date time.Time, timeOfDay string) time.Time {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return NormalizeDate(date)
	}
	d := NormalizeDate(date)
	return d.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}

// ValidTimeOfDay reports whether s is an acceptable "HH:MM" slot time.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}
