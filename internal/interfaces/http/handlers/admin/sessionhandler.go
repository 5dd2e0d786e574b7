package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/application/admin/dto"
	"github.com/inkfolio/inkfolio/internal/application/admin/usecases"
	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

type SessionHandler struct {
	loginUC         usecases.LoginExecutor
	verifySessionUC usecases.VerifySessionExecutor
	logoutUC        usecases.LogoutExecutor
	cookieConfig    config.CookieConfig
	sessionTTL      time.Duration
	logger          logger.Interface
}

func NewSessionHandler(
	loginUC usecases.LoginExecutor,
	verifySessionUC usecases.VerifySessionExecutor,
	logoutUC usecases.LogoutExecutor,
	cookieConfig config.CookieConfig,
	sessionTTL time.Duration,
	logger logger.Interface,
) *SessionHandler {
	return &SessionHandler{
		loginUC:         loginUC,
		verifySessionUC: verifySessionUC,
		logoutUC:        logoutUC,
		cookieConfig:    cookieConfig,
		sessionTTL:      sessionTTL,
		logger:          logger,
	}
}

// Login sets the session cookie. The token is never echoed in the body.
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /admin/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, int(h.sessionTTL.Seconds()))
	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.LoginResponse{ExpiresAt: result.ExpiresAt})
}

// Verify
// @Summary Check the admin session
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.VerifyResponse}
// @Router /admin/verify [get]
func (h *SessionHandler) Verify(c *gin.Context) {
	valid, err := h.verifySessionUC.Execute(c.Request.Context(), utils.GetSessionToken(c, h.cookieConfig.Name))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.VerifyResponse{Valid: valid})
}

// Logout always clears the cookie. A session that is already gone is not an
// error; a store failure is, since the session may still be live.
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /admin/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	token := utils.GetSessionToken(c, h.cookieConfig.Name)
	_, err := h.logoutUC.Execute(c.Request.Context(), token)

	utils.ClearSessionCookie(c, h.cookieConfig)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
