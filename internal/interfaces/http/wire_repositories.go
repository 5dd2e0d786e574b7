package http

import (
	"github.com/inkfolio/inkfolio/internal/domain/admin"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/infrastructure/repository"
)

type repositories struct {
	reflectionRepo reflection.Repository
	contactRepo    contact.Repository
	sessionRepo    admin.SessionRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		reflectionRepo: repository.NewReflectionRepository(c.db, c.log),
		contactRepo:    repository.NewContactRepository(c.db, c.log),
		sessionRepo:    repository.NewSessionRepository(c.db),
	}
}
