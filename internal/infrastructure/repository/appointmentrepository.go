package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/appointment"
	vo "campusdesk/internal/domain/appointment/valueobjects"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/logger"
)

// AppointmentRepository implements appointment.Repository on top of gorm.
type AppointmentRepository struct {
	db     *gorm.DB
	mapper mappers.AppointmentMapper
	logger logger.Interface
}

func NewAppointmentRepository(db *gorm.DB, log logger.Interface) appointment.Repository {
	return &AppointmentRepository{
		db:     db,
		mapper: mappers.NewAppointmentMapper(),
		logger: log,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, entity *appointment.Appointment) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set appointment ID: %w", err)
	}

	r.logger.Infow("appointment created",
		"id", model.ID,
		"student_id", model.StudentID,
		"faculty_id", model.FacultyID,
		"date", model.Date.Format("2006-01-02"),
		"time", model.TimeOfDay,
	)
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, entity *appointment.Appointment) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.AppointmentModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"status":        model.Status,
		"meeting_link":  model.MeetingLink,
		"faculty_notes": model.FacultyNotes,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update appointment", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("appointment %d not found", model.ID)
	}

	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*appointment.Appointment, error) {
	var model models.AppointmentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get appointment by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AppointmentRepository) ExistsActiveSlot(ctx context.Context, facultyID uint, date time.Time, timeOfDay string) (bool, error) {
	var count int64

	active := vo.ActiveStatuses()
	statuses := make([]string, 0, len(active))
	for _, s := range active {
		statuses = append(statuses, s.String())
	}

	err := r.db.WithContext(ctx).
		Model(&models.AppointmentModel{}).
		Where("faculty_id = ? AND date = ? AND time_of_day = ? AND status IN ?",
			facultyID,
			appointment.NormalizeDate(date).Format("2006-01-02"),
			timeOfDay,
			statuses,
		).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check active slot", "faculty_id", facultyID, "error", err)
		return false, fmt.Errorf("failed to check active slot: %w", err)
	}

	return count > 0, nil
}

func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID uint, filter appointment.Filter) ([]*appointment.Appointment, error) {
	return r.list(ctx, "student_id = ?", studentID, filter)
}

func (r *AppointmentRepository) ListByFaculty(ctx context.Context, facultyID uint, filter appointment.Filter) ([]*appointment.Appointment, error) {
	return r.list(ctx, "faculty_id = ?", facultyID, filter)
}

func (r *AppointmentRepository) list(ctx context.Context, cond string, id uint, filter appointment.Filter) ([]*appointment.Appointment, error) {
	query := r.db.WithContext(ctx).Where(cond, id)
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var appointmentModels []*models.AppointmentModel
	if err := query.Order("date, time_of_day").Find(&appointmentModels).Error; err != nil {
		r.logger.Errorw("failed to list appointments", "error", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointments := make([]*appointment.Appointment, 0, len(appointmentModels))
	for _, model := range appointmentModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map appointment, skipping", "id", model.ID, "error", err)
			continue
		}
		appointments = append(appointments, entity)
	}

	return appointments, nil
}
