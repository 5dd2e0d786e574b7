package mappers

import (
	"fmt"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
	"github.com/inkfolio/inkfolio/internal/shared/mapper"
)

type ContactMapper interface {
	ToEntity(model *models.ContactSubmissionModel) (*contact.Submission, error)
	ToModel(entity *contact.Submission) *models.ContactSubmissionModel
	ToEntities(models []*models.ContactSubmissionModel) ([]*contact.Submission, error)
}

type ContactMapperImpl struct{}

func NewContactMapper() ContactMapper {
	return &ContactMapperImpl{}
}

func (m *ContactMapperImpl) ToEntity(model *models.ContactSubmissionModel) (*contact.Submission, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewSubmissionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map submission status: %w", err)
	}

	entity, err := contact.ReconstructSubmission(
		model.ID,
		model.Name,
		model.Email,
		vo.Reason(model.Reason),
		model.Message,
		status,
		model.SubmittedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct submission entity: %w", err)
	}
	return entity, nil
}

func (m *ContactMapperImpl) ToModel(entity *contact.Submission) *models.ContactSubmissionModel {
	if entity == nil {
		return nil
	}
	return &models.ContactSubmissionModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Email:       entity.Email(),
		Reason:      entity.Reason().String(),
		Message:     entity.Message(),
		Status:      entity.Status().String(),
		SubmittedAt: entity.SubmittedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ContactMapperImpl) ToEntities(models []*models.ContactSubmissionModel) ([]*contact.Submission, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
