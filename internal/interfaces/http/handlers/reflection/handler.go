package reflection

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/application/reflection/dto"
	"github.com/inkfolio/inkfolio/internal/application/reflection/usecases"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

type Handler struct {
	createUC         usecases.CreateReflectionExecutor
	getUC            usecases.GetReflectionExecutor
	listUC           usecases.ListReflectionsExecutor
	updateUC         usecases.UpdateReflectionExecutor
	deleteUC         usecases.DeleteReflectionExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	logger           logger.Interface
}

func NewHandler(
	createUC usecases.CreateReflectionExecutor,
	getUC usecases.GetReflectionExecutor,
	listUC usecases.ListReflectionsExecutor,
	updateUC usecases.UpdateReflectionExecutor,
	deleteUC usecases.DeleteReflectionExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:         createUC,
		getUC:            getUC,
		listUC:           listUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		listCategoriesUC: listCategoriesUC,
		logger:           logger,
	}
}

// ListPublished returns published reflections only, whatever the query says.
// @Summary List published reflections
// @Tags Content
// @Produce json
// @Param category query string false "blog, journal or artwork"
// @Success 200 {object} utils.APIResponse{data=dto.ReflectionListDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /content [get]
func (h *Handler) ListPublished(c *gin.Context) {
	h.list(c, true)
}

// ListAll includes drafts.
// @Summary List all reflections
// @Tags Content
// @Produce json
// @Param category query string false "blog, journal or artwork"
// @Success 200 {object} utils.APIResponse{data=dto.ReflectionListDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /content-admin [get]
func (h *Handler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, publishedOnly bool) {
	query := usecases.ListReflectionsQuery{
		Category:      c.Query("category"),
		PublishedOnly: publishedOnly,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCategories
// @Summary List content categories
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.CategoryDTO}
// @Router /content/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.listCategoriesUC.Execute(c.Request.Context()))
}

// Get answers drafts and unknown ids with the same 404.
// @Summary Get a published reflection
// @Tags Content
// @Produce json
// @Param id path string true "Reflection ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReflectionDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /content/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetReflectionQuery{ID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create
// @Summary Create a reflection
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateReflectionRequest true "Reflection"
// @Success 201 {object} utils.APIResponse{data=dto.ReflectionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /content [post]
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create reflection", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateReflectionCommand{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		Date:      req.Date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reflection created successfully")
}

// Update applies a partial update.
// @Summary Update a reflection
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Reflection ID"
// @Param request body dto.UpdateReflectionRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ReflectionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /content/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req dto.UpdateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update reflection", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateReflectionCommand{
		ID:        c.Param("id"),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		Date:      req.Date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reflection updated successfully", result)
}

// Delete
// @Summary Delete a reflection
// @Tags Content
// @Produce json
// @Param id path string true "Reflection ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /content/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reflection deleted successfully", nil)
}
