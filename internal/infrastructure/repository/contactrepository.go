package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/mappers"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
	apperrors "github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContactMapper
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mappers.NewContactMapper(),
		logger: logger,
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, submission *contact.Submission) error {
	model := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact submission", "error", err)
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id string) (*contact.Submission, error) {
	var model models.ContactSubmissionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("contact submission not found")
		}
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ContactRepositoryImpl) List(ctx context.Context, status *vo.SubmissionStatus) ([]*contact.Submission, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactSubmissionModel{})
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var rows []*models.ContactSubmissionModel
	if err := query.Order("submitted_at DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list contact submissions", "error", err)
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *ContactRepositoryImpl) UpdateStatus(ctx context.Context, submission *contact.Submission) error {
	result := r.db.WithContext(ctx).Model(&models.ContactSubmissionModel{}).
		Where("id = ?", submission.ID()).
		Updates(map[string]interface{}{
			"status":     submission.Status().String(),
			"updated_at": submission.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update contact submission status", "id", submission.ID(), "error", result.Error)
		return fmt.Errorf("failed to update contact submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contact submission not found")
	}
	return nil
}
