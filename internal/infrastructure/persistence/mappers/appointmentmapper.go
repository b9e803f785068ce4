package mappers

import (
	"time"

	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

// AppointmentMapper handles the conversion between Appointment domain
// entities and persistence models.
type AppointmentMapper interface {
	ToModel(a *appointment.Appointment) *models.AppointmentModel
	ToDomain(model *models.AppointmentModel) (*appointment.Appointment, error)
}

type AppointmentMapperImpl struct{}

func NewAppointmentMapper() AppointmentMapper {
	return &AppointmentMapperImpl{}
}

func (m *AppointmentMapperImpl) ToModel(a *appointment.Appointment) *models.AppointmentModel {
	return &models.AppointmentModel{
		ID:           a.ID(),
		StudentID:    a.StudentID(),
		FacultyID:    a.FacultyID(),
		Date:         a.Date(),
		TimeOfDay:    a.TimeOfDay(),
		Duration:     int(a.Duration()),
		Reason:       a.Reason(),
		Status:       a.Status().String(),
		MeetingLink:  a.MeetingLink(),
		FacultyNotes: a.FacultyNotes(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (m *AppointmentMapperImpl) ToDomain(model *models.AppointmentModel) (*appointment.Appointment, error) {
	return appointment.ReconstructAppointment(
		model.ID,
		model.StudentID,
		model.FacultyID,
		appointment.NormalizeDate(model.Date),
		model.TimeOfDay,
		vo.Duration(model.Duration),
		model.Reason,
		vo.Status(model.Status),
		model.MeetingLink,
		model.FacultyNotes,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
