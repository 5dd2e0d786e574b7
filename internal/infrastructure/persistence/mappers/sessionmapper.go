package mappers

import (
	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
)

// SessionMapper converts between admin sessions and their rows.
type SessionMapper interface {
	ToModel(entity *admin.Session) *models.AdminSessionModel
	ToDomain(model *models.AdminSessionModel) *admin.Session
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *admin.Session) *models.AdminSessionModel {
	if entity == nil {
		return nil
	}
	return &models.AdminSessionModel{
		TokenHash: entity.TokenHash,
		IPAddress: entity.IPAddress,
		UserAgent: entity.UserAgent,
		ExpiresAt: entity.ExpiresAt,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.AdminSessionModel) *admin.Session {
	if model == nil {
		return nil
	}
	return &admin.Session{
		TokenHash: model.TokenHash,
		IPAddress: model.IPAddress,
		UserAgent: model.UserAgent,
		ExpiresAt: model.ExpiresAt.UTC(),
		CreatedAt: model.CreatedAt.UTC(),
	}
}
