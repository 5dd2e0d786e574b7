package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	now biztime.Clock
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: biztime.NowUTC}
}

// HealthCheck
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} utils.APIResponse{data=HealthResponse}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", HealthResponse{Status: "healthy", Timestamp: h.now()})
}
