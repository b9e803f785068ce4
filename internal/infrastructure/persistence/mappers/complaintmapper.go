package mappers

import (
	"time"

	"campusdesk/internal/domain/complaint"
	vo "campusdesk/internal/domain/complaint/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	model := &models.ComplaintModel{
		ID:          c.ID(),
		ReporterID:  c.ReporterID(),
		Category:    c.Category().String(),
		Title:       c.Title(),
		Description: c.Description(),
		Location:    c.Location(),
		Building:    c.Building(),
		Floor:       c.Floor(),
		Status:      c.Status().String(),
		Priority:    c.Priority().String(),
		AssigneeID:  c.AssigneeID(),
		AdminNotes:  c.AdminNotes(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}

	if c.ResolvedAt() != nil {
		resolvedAt := c.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolvedAt
	}

	return model
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt)
		resolvedAt = &t
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.ReporterID,
		vo.Category(model.Category),
		model.Title,
		model.Description,
		model.Location,
		model.Building,
		model.Floor,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.AssigneeID,
		model.AdminNotes,
		resolvedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
