package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/directory"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/logger"
)

// FacultyProfileRepository implements directory.Repository on top of gorm.
type FacultyProfileRepository struct {
	db     *gorm.DB
	mapper mappers.FacultyProfileMapper
	logger logger.Interface
}

func NewFacultyProfileRepository(db *gorm.DB, log logger.Interface) directory.Repository {
	return &FacultyProfileRepository{
		db:     db,
		mapper: mappers.NewFacultyProfileMapper(),
		logger: log,
	}
}

func (r *FacultyProfileRepository) Create(ctx context.Context, entity *directory.Profile) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create faculty profile", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create faculty profile: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set faculty profile ID: %w", err)
	}

	r.logger.Infow("faculty profile created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *FacultyProfileRepository) GetByID(ctx context.Context, id uint) (*directory.Profile, error) {
	var model models.FacultyProfileModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get faculty profile by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get faculty profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FacultyProfileRepository) GetByEmail(ctx context.Context, email string) (*directory.Profile, error) {
	var model models.FacultyProfileModel
	normalized := directory.NormalizeEmail(email)

	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get faculty profile by email", "email", normalized, "error", err)
		return nil, fmt.Errorf("failed to get faculty profile by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FacultyProfileRepository) List(ctx context.Context) ([]*directory.Profile, error) {
	var profileModels []*models.FacultyProfileModel

	if err := r.db.WithContext(ctx).Order("department, name").Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list faculty profiles", "error", err)
		return nil, fmt.Errorf("failed to list faculty profiles: %w", err)
	}

	profiles := make([]*directory.Profile, 0, len(profileModels))
	for _, model := range profileModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map faculty profile, skipping", "id", model.ID, "error", err)
			continue
		}
		profiles = append(profiles, entity)
	}

	return profiles, nil
}
