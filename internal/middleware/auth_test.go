package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/config"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTManager) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	jwtManager := auth.NewJWTManager(&config.JWTConfig{
		Secret:          "test-secret",
		ExpirationHours: 1,
		Issuer:          "pgms-test",
	})

	router := gin.New()
	router.GET("/protected", Authenticate(jwtManager), func(c *gin.Context) {
		session, _ := SessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": session.Email})
	})
	router.GET("/owner", Authenticate(jwtManager), RequireRole(auth.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtManager
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthenticateMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/protected", "").Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	router, _ := newAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/protected", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/protected", "Bearer").Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/protected", "Bearer not.a.token").Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	router, jwtManager := newAuthRouter(t)
	token, err := jwtManager.GenerateToken(&auth.Session{Email: "a@x.com", Role: auth.RoleTenant})
	require.NoError(t, err)

	recorder := get(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "a@x.com")
}

func TestRequireRole(t *testing.T) {
	router, jwtManager := newAuthRouter(t)

	tenantToken, err := jwtManager.GenerateToken(&auth.Session{Email: "a@x.com", Role: auth.RoleTenant})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(router, "/owner", "Bearer "+tenantToken).Code)

	ownerToken, err := jwtManager.GenerateToken(&auth.Session{Email: "o@x.com", Role: auth.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(router, "/owner", "Bearer "+ownerToken).Code)
}
