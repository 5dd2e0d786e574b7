package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/application/contact/usecases"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

type Handler struct {
	submitUC       usecases.SubmitContactExecutor
	listUC         usecases.ListSubmissionsExecutor
	updateStatusUC usecases.UpdateSubmissionStatusExecutor
	logger         logger.Interface
}

func NewHandler(
	submitUC usecases.SubmitContactExecutor,
	listUC usecases.ListSubmissionsExecutor,
	updateStatusUC usecases.UpdateSubmissionStatusExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:       submitUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

// Submit stores a visitor's message.
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Contact form"
// @Success 201 {object} utils.APIResponse{data=dto.SubmitContactResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	var req dto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contact submission", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitContactCommand{
		Name:    req.Name,
		Email:   req.Email,
		Reason:  req.Reason,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, result.Message)
}

// List
// @Summary List contact submissions
// @Tags Contact
// @Produce json
// @Param status query string false "new, read or replied"
// @Success 200 {object} utils.APIResponse{data=[]dto.SubmissionDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /contact-submissions [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSubmissionsQuery{Status: c.Query("status")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus
// @Summary Update a submission's status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse{data=dto.SubmissionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /contact-submissions/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateSubmissionStatusCommand{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}
