package http

import (
	adminUsecases "github.com/inkfolio/inkfolio/internal/application/admin/usecases"
	contactUsecases "github.com/inkfolio/inkfolio/internal/application/contact/usecases"
	reflectionUsecases "github.com/inkfolio/inkfolio/internal/application/reflection/usecases"
)

type allUseCases struct {
	// Content
	createReflectionUC *reflectionUsecases.CreateReflectionUseCase
	getReflectionUC    *reflectionUsecases.GetReflectionUseCase
	listReflectionsUC  *reflectionUsecases.ListReflectionsUseCase
	updateReflectionUC *reflectionUsecases.UpdateReflectionUseCase
	deleteReflectionUC *reflectionUsecases.DeleteReflectionUseCase
	listCategoriesUC   *reflectionUsecases.ListCategoriesUseCase

	// Contact
	submitContactUC          *contactUsecases.SubmitContactUseCase
	listSubmissionsUC        *contactUsecases.ListSubmissionsUseCase
	updateSubmissionStatusUC *contactUsecases.UpdateSubmissionStatusUseCase

	// Admin sessions
	loginUC         *adminUsecases.LoginUseCase
	verifySessionUC *adminUsecases.VerifySessionUseCase
	logoutUC        *adminUsecases.LogoutUseCase
	sweepSessionsUC *adminUsecases.SweepSessionsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	contentLog := c.log.Named("content")
	contactLog := c.log.Named("contact")
	authLog := c.log.Named("auth")

	c.ucs = &allUseCases{
		createReflectionUC: reflectionUsecases.NewCreateReflectionUseCase(r.reflectionRepo, c.renderer, contentLog),
		getReflectionUC:    reflectionUsecases.NewGetReflectionUseCase(r.reflectionRepo, c.renderer, contentLog),
		listReflectionsUC:  reflectionUsecases.NewListReflectionsUseCase(r.reflectionRepo, c.renderer, contentLog),
		updateReflectionUC: reflectionUsecases.NewUpdateReflectionUseCase(r.reflectionRepo, c.renderer, contentLog),
		deleteReflectionUC: reflectionUsecases.NewDeleteReflectionUseCase(r.reflectionRepo, contentLog),
		listCategoriesUC:   reflectionUsecases.NewListCategoriesUseCase(),

		submitContactUC:          contactUsecases.NewSubmitContactUseCase(r.contactRepo, c.notifier, c.tasks, contactLog),
		listSubmissionsUC:        contactUsecases.NewListSubmissionsUseCase(r.contactRepo, contactLog),
		updateSubmissionStatusUC: contactUsecases.NewUpdateSubmissionStatusUseCase(r.contactRepo, contactLog),

		loginUC:         adminUsecases.NewLoginUseCase(c.credentials, r.sessionRepo, c.tokens, c.cfg.Admin.SessionTTL(), authLog),
		verifySessionUC: adminUsecases.NewVerifySessionUseCase(r.sessionRepo, c.tokens, authLog),
		logoutUC:        adminUsecases.NewLogoutUseCase(r.sessionRepo, c.tokens, authLog),
		sweepSessionsUC: adminUsecases.NewSweepSessionsUseCase(r.sessionRepo, authLog),
	}
}
