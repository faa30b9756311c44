package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizsuite/backend/internal/infrastructure/auth"
	"github.com/bizsuite/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(jwtService))
	r.GET("/api/v1/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": GetJWTTenantID(c),
			"user_id":   GetJWTUserID(c),
			"username":  GetJWTUsername(c),
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func newJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "middleware-test-secret-middleware-test-secret",
		AccessTokenExpiration: expiration,
		Issuer:                "bizsuite-test",
	})
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := newJWTService(15 * time.Minute)
	router := newJWTTestRouter(svc)

	tenantID := uuid.New()
	userID := uuid.New()
	token, _, err := svc.GenerateToken(tenantID, userID, "jdoe")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tenantID.String())
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "jdoe")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newJWTTestRouter(newJWTService(15 * time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	svc := newJWTService(-time.Minute)
	router := newJWTTestRouter(svc)

	token, _, err := svc.GenerateToken(uuid.New(), uuid.New(), "jdoe")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_TOKEN_EXPIRED")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := newJWTTestRouter(newJWTService(15 * time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(AuthHeaderKey, "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SkipPath(t *testing.T) {
	router := newJWTTestRouter(newJWTService(15 * time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
