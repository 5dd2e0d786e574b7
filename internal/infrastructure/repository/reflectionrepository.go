package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/mappers"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
	apperrors "github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type ReflectionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReflectionMapper
	logger logger.Interface
}

func NewReflectionRepository(db *gorm.DB, logger logger.Interface) reflection.Repository {
	return &ReflectionRepositoryImpl{
		db:     db,
		mapper: mappers.NewReflectionMapper(),
		logger: logger,
	}
}

func (r *ReflectionRepositoryImpl) Create(ctx context.Context, entity *reflection.Reflection) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map reflection: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create reflection", "error", err)
		return fmt.Errorf("failed to create reflection: %w", err)
	}

	return nil
}

func (r *ReflectionRepositoryImpl) GetByID(ctx context.Context, id string) (*reflection.Reflection, error) {
	var model models.ReflectionModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("reflection not found")
		}
		r.logger.Errorw("failed to get reflection", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get reflection: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ReflectionRepositoryImpl) List(ctx context.Context, filter reflection.ListFilter) ([]*reflection.Reflection, error) {
	query := r.db.WithContext(ctx).Model(&models.ReflectionModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	var rows []*models.ReflectionModel
	if err := query.Order("date DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list reflections", "error", err)
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *ReflectionRepositoryImpl) Update(ctx context.Context, entity *reflection.Reflection) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map reflection: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ReflectionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"excerpt":    model.Excerpt,
			"content":    model.Content,
			"category":   model.Category,
			"tags":       model.Tags,
			"published":  model.Published,
			"read_time":  model.ReadTime,
			"date":       model.Date,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update reflection", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update reflection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("reflection not found")
	}

	return nil
}

func (r *ReflectionRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ReflectionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete reflection", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to delete reflection: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
