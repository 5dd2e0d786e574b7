package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/inkfolio/inkfolio/internal/application/admin/usecases"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/utils"
)

type AuthMiddleware struct {
	verifySessionUC usecases.VerifySessionExecutor
	cookieName      string
	logger          logger.Interface
}

func NewAuthMiddleware(
	verifySessionUC usecases.VerifySessionExecutor,
	cookieName string,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		verifySessionUC: verifySessionUC,
		cookieName:      cookieName,
		logger:          logger,
	}
}

// RequireAdmin lets the request through only with a live admin session.
// Missing, unknown and expired tokens all get the same 401.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c, m.cookieName)
		if token == "" {
			m.reject(c, errors.NewSessionInvalidError())
			return
		}

		valid, err := m.verifySessionUC.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Errorw("failed to verify admin session", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		if !valid {
			m.reject(c, errors.NewSessionInvalidError())
			return
		}

		c.Set(constants.ContextKeyAdmin, true)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, err error) {
	fields := []any{
		"path", c.Request.URL.Path,
		"ip", c.ClientIP(),
		"security_event", errors.IsSecurityEvent(err),
	}
	if errors.ShouldLogAuthError(err) {
		m.logger.Warnw("rejected admin request", fields...)
	} else {
		m.logger.Debugw("rejected admin request", fields...)
	}

	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
