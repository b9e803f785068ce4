package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/complaint"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/logger"
)

// ComplaintRepository implements complaint.Repository on top of gorm.
type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	logger logger.Interface
}

func NewComplaintRepository(db *gorm.DB, log logger.Interface) complaint.Repository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
		logger: log,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, entity *complaint.Complaint) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create complaint", "reporter_id", model.ReporterID, "error", err)
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set complaint ID: %w", err)
	}

	r.logger.Infow("complaint created", "id", model.ID, "category", model.Category, "priority", model.Priority)
	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, entity *complaint.Complaint) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.ComplaintModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"status":      model.Status,
		"priority":    model.Priority,
		"assignee_id": model.AssigneeID,
		"admin_notes": model.AdminNotes,
		"resolved_at": model.ResolvedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update complaint", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complaint %d not found", model.ID)
	}

	return nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ComplaintModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete complaint", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complaint %d not found", id)
	}

	r.logger.Infow("complaint deleted", "id", id)
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get complaint by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) ListByReporter(ctx context.Context, reporterID uint, filter complaint.Filter) ([]*complaint.Complaint, error) {
	query := r.db.WithContext(ctx).Where("reporter_id = ?", reporterID)
	return r.list(applyComplaintFilter(query, filter).Order("created_at DESC"))
}

func (r *ComplaintRepository) ListAll(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error) {
	query := r.db.WithContext(ctx)
	return r.list(applyComplaintFilter(query, filter).
		Order("FIELD(priority, 'urgent', 'high', 'medium', 'low')").
		Order("created_at DESC"))
}

func (r *ComplaintRepository) list(query *gorm.DB) ([]*complaint.Complaint, error) {
	var complaintModels []*models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		r.logger.Errorw("failed to list complaints", "error", err)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, 0, len(complaintModels))
	for _, model := range complaintModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map complaint, skipping", "id", model.ID, "error", err)
			continue
		}
		complaints = append(complaints, entity)
	}

	return complaints, nil
}

func applyComplaintFilter(query *gorm.DB, filter complaint.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	return query
}
