package mappers

import (
	"time"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/infrastructure/persistence/models"
)

// FacultyProfileMapper handles the conversion between faculty directory
// profiles and persistence models.
type FacultyProfileMapper interface {
	ToModel(p *directory.Profile) *models.FacultyProfileModel
	ToDomain(model *models.FacultyProfileModel) (*directory.Profile, error)
}

type FacultyProfileMapperImpl struct{}

func NewFacultyProfileMapper() FacultyProfileMapper {
	return &FacultyProfileMapperImpl{}
}

func (m *FacultyProfileMapperImpl) ToModel(p *directory.Profile) *models.FacultyProfileModel {
	return &models.FacultyProfileModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Department:  p.Department(),
		Email:       p.Email(),
		Designation: p.Designation(),
		Phone:       p.Phone(),
		Office:      p.Office(),
		Bio:         p.Bio(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (m *FacultyProfileMapperImpl) ToDomain(model *models.FacultyProfileModel) (*directory.Profile, error) {
	return directory.ReconstructProfile(
		model.ID,
		model.Name,
		model.Department,
		model.Email,
		model.Designation,
		model.Phone,
		model.Office,
		model.Bio,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
