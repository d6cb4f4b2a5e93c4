package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warsztat/internal/infrastructure/auth"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/utils"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.SessionTokenService, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenService := auth.NewSessionTokenService("test-secret", 1)
	authMiddleware := NewAuthMiddleware(tokenService, &mockLogger{})

	reached := false
	router := gin.New()
	router.POST("/requests", authMiddleware.RequireAuth(), func(c *gin.Context) {
		reached = true
		login, _ := c.Get(constants.ContextKeyLogin)
		c.JSON(http.StatusCreated, gin.H{"login": login})
	})

	return router, tokenService, &reached
}

func TestRequireAuth_RejectsAnonymousSubmission(t *testing.T) {
	router, _, reached := newAuthTestRouter(t)

	body := `{"first_name":"Jan","last_name":"Kowalski","phone":"601234567","slot":"2026-09-03 10:00","subject":"naprawa"}`
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_RejectsInvalidToken(t *testing.T) {
	router, _, reached := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_AcceptsSessionCookie(t *testing.T) {
	router, tokenService, reached := newAuthTestRouter(t)

	token, err := tokenService.Generate("alice", authorization.RoleClient)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireAuth_AcceptsBearerHeader(t *testing.T) {
	router, tokenService, reached := newAuthTestRouter(t)

	token, err := tokenService.Generate("bob", authorization.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, *reached)
}
