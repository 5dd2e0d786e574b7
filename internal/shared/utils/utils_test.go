package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorResponseWithError(t *testing.T) {
	t.Run("app error keeps type and code", func(t *testing.T) {
		c, w := newContext()
		ErrorResponseWithError(c, errors.NewNotFoundError("Reflection not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "not_found", body.Error.Type)
		assert.Equal(t, "Reflection not found", body.Error.Message)
	})

	t.Run("plain error hides details", func(t *testing.T) {
		c, w := newContext()
		ErrorResponseWithError(c, stderrors.New("database is locked"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "locked")
		assert.Contains(t, w.Body.String(), "internal_error")
	})
}

func TestCreatedResponse_DefaultMessage(t *testing.T) {
	c, w := newContext()
	CreatedResponse(c, gin.H{"id": "x"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Resource created successfully")
}

func TestSessionCookie(t *testing.T) {
	cfg := config.CookieConfig{Name: "session_id", Path: "/", Secure: true, SameSite: "Strict"}

	c, w := newContext()
	SetSessionCookie(c, cfg, "tok", 3600)
	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "session_id=tok")
	assert.Contains(t, setCookie, "HttpOnly")
	assert.Contains(t, setCookie, "Secure")
	assert.Contains(t, setCookie, "SameSite=Strict")

	c, w = newContext()
	ClearSessionCookie(c, cfg)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestGetSessionToken(t *testing.T) {
	c, _ := newContext()
	c.Request.AddCookie(&http.Cookie{Name: "session_id", Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-cookie", GetSessionToken(c, "session_id"))

	c, _ = newContext()
	c.Request.Header.Set("Authorization", "bearer  from-header ")
	assert.Equal(t, "from-header", GetSessionToken(c, "session_id"))

	c, _ = newContext()
	c.Request.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, GetSessionToken(c, "session_id"))
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	require.NoError(t, ValidateStruct(input{Name: "Ada", Email: "ada@example.com"}))

	err := ValidateStruct(input{Email: "nope"})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
}

func TestBindingError_SyntaxIsBadRequest(t *testing.T) {
	var target map[string]any
	err := json.Unmarshal([]byte("{"), &target)

	appErr := errors.GetAppError(BindingError(err))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}
