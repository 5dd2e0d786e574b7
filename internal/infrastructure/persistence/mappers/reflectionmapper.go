package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
	"github.com/inkfolio/inkfolio/internal/shared/mapper"
)

type ReflectionMapper interface {
	ToEntity(model *models.ReflectionModel) (*reflection.Reflection, error)
	ToModel(entity *reflection.Reflection) (*models.ReflectionModel, error)
	ToEntities(models []*models.ReflectionModel) ([]*reflection.Reflection, error)
}

type ReflectionMapperImpl struct{}

func NewReflectionMapper() ReflectionMapper {
	return &ReflectionMapperImpl{}
}

func (m *ReflectionMapperImpl) ToEntity(model *models.ReflectionModel) (*reflection.Reflection, error) {
	if model == nil {
		return nil, nil
	}

	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to map category: %w", err)
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
	}

	entity, err := reflection.ReconstructReflection(
		model.ID,
		model.Title,
		model.Excerpt,
		model.Content,
		category,
		tags,
		model.Published,
		model.Date.UTC(),
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct reflection entity: %w", err)
	}

	return entity, nil
}

func (m *ReflectionMapperImpl) ToModel(entity *reflection.Reflection) (*models.ReflectionModel, error) {
	if entity == nil {
		return nil, nil
	}

	tags, err := json.Marshal(entity.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	return &models.ReflectionModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Excerpt:   entity.Excerpt(),
		Content:   entity.Content(),
		Category:  entity.Category().String(),
		Tags:      datatypes.JSON(tags),
		Published: entity.IsPublished(),
		ReadTime:  entity.ReadTime(),
		Date:      entity.Date(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *ReflectionMapperImpl) ToEntities(models []*models.ReflectionModel) ([]*reflection.Reflection, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
