package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/domain/appointment"
	"campusdesk/internal/domain/user"
)

// AppointmentEmailData carries everything the mail templates need about an
// appointment and its two parties.
type AppointmentEmailData struct {
	StudentName  string
	StudentEmail string
	FacultyName  string
	FacultyEmail string
	Date         time.Time
	TimeOfDay    string
	Duration     int
	Reason       string
	Status       string
	MeetingLink  string
	FacultyNotes string
}

// Notifier delivers appointment mail. Callers decide whether delivery
// failures are fatal; implementations just report them.
type Notifier interface {
	SendAppointmentRequestedEmail(data AppointmentEmailData) error
	SendAppointmentStatusEmail(data AppointmentEmailData) error
}

// AppointmentDetails pairs an appointment with its resolved parties for
// presentation.
type AppointmentDetails struct {
	Appointment *appointment.Appointment
	Student     *user.User
	Faculty     *user.User
}

// loadDetails resolves both parties of each appointment, caching accounts
// across the batch.
func loadDetails(ctx context.Context, userRepo user.Repository, appointments []*appointment.Appointment) ([]AppointmentDetails, error) {
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

	details := make([]AppointmentDetails, 0, len(appointments))
	for _, a := range appointments {
		student, err := lookup(a.StudentID())
		if err != nil {
			return nil, err
		}
		faculty, err := lookup(a.FacultyID())
		if err != nil {
			return nil, err
		}
		details = append(details, AppointmentDetails{Appointment: a, Student: student, Faculty: faculty})
	}
	return details, nil
}

func emailData(d AppointmentDetails) AppointmentEmailData {
	data := AppointmentEmailData{
		Date:         d.Appointment.Date(),
		TimeOfDay:    d.Appointment.TimeOfDay(),
		Duration:     d.Appointment.Duration().Minutes(),
		Reason:       d.Appointment.Reason(),
		Status:       d.Appointment.Status().String(),
		MeetingLink:  d.Appointment.MeetingLink(),
		FacultyNotes: d.Appointment.FacultyNotes(),
	}
	if d.Student != nil {
		data.StudentName = d.Student.Name()
		data.StudentEmail = d.Student.Email().String()
	}
	if d.Faculty != nil {
		data.FacultyName = d.Faculty.Name()
		data.FacultyEmail = d.Faculty.Email().String()
	}
	return data
}
