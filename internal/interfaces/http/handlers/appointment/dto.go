package appointment

import (
	"time"

	"campusdesk/internal/application/appointment/usecases"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
)

type BookAppointmentRequest struct {
	FacultyID uint   `json:"faculty_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Duration  int    `json:"duration"`
	Reason    string `json:"reason" binding:"required,max=2000"`
}

func (r *BookAppointmentRequest) ToCommand(studentID uint) (usecases.BookAppointmentCommand, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return usecases.BookAppointmentCommand{}, errors.NewValidationError("Invalid date format. Use YYYY-MM-DD")
	}

	duration := r.Duration
	if duration == 0 {
		duration = vo.DefaultDuration.Minutes()
	}

	return usecases.BookAppointmentCommand{
		StudentID:  studentID,
		FacultyRef: r.FacultyID,
		Date:       date,
		TimeOfDay:  r.Time,
		Duration:   duration,
		Reason:     r.Reason,
	}, nil
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	FacultyNotes string `json:"faculty_notes"`
	MeetingLink  string `json:"meeting_link"`
}

type PartyResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AppointmentResponse struct {
	ID           uint           `json:"id"`
	Student      *PartyResponse `json:"student,omitempty"`
	Faculty      *PartyResponse `json:"faculty,omitempty"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Duration     int            `json:"duration"`
	Reason       string         `json:"reason"`
	Status       string         `json:"status"`
	MeetingLink  string         `json:"meeting_link,omitempty"`
	FacultyNotes string         `json:"faculty_notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type FacultyAccountResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toPartyResponse(u *user.User) *PartyResponse {
	if u == nil {
		return nil
	}
	return &PartyResponse{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().String(),
	}
}

func toAppointmentResponse(details *usecases.AppointmentDetails) AppointmentResponse {
	a := details.Appointment
	return AppointmentResponse{
		ID:           a.ID(),
		Student:      toPartyResponse(details.Student),
		Faculty:      toPartyResponse(details.Faculty),
		Date:         a.Date().Format("2006-01-02"),
		Time:         a.TimeOfDay(),
		Duration:     int(a.Duration()),
		Reason:       a.Reason(),
		Status:       a.Status().String(),
		MeetingLink:  a.MeetingLink(),
		FacultyNotes: a.FacultyNotes(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func toAppointmentResponses(details []usecases.AppointmentDetails) []AppointmentResponse {
	responses := make([]AppointmentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, toAppointmentResponse(&details[i]))
	}
	return responses
}

func toFacultyAccountResponses(accounts []*user.User) []FacultyAccountResponse {
	responses := make([]FacultyAccountResponse, 0, len(accounts))
	for _, u := range accounts {
		responses = append(responses, FacultyAccountResponse{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email().String(),
		})
	}
	return responses
}
