package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invite_studio/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

func authRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret, nil), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func get(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := get(authRouter(testSecret), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := get(authRouter(testSecret), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := SignToken(testSecret, "user-1", time.Hour)
		require.NoError(t, err)

		w := get(authRouter(testSecret), "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := SignToken("other", "user-1", time.Hour)
		require.NoError(t, err)

		w := get(authRouter(testSecret), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := SignToken(testSecret, "user-1", -time.Minute)
		require.NoError(t, err)

		w := get(authRouter(testSecret), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := get(authRouter(testSecret), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := get(authRouter(testSecret), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("secret not configured", func(t *testing.T) {
		w := get(authRouter(""), "Bearer x")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(testSecret, nil), RequireAdmin(nil), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})

	t.Run("plain user is refused", func(t *testing.T) {
		token, err := SignToken(testSecret, "user-1", time.Hour)
		require.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := SignAdminToken(testSecret, "admin-1", time.Hour)
		require.NoError(t, err)

		w := get(r, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin-1", w.Body.String())
	})

	t.Run("admin claim signed with another key", func(t *testing.T) {
		token, err := SignAdminToken("other", "admin-1", time.Hour)
		require.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	var scoped *zap.Logger
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/templates/:id", func(c *gin.Context) {
		scoped = logger.FromContext(c.Request.Context(), nil)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/templates/t-1", nil)
	req.Header.Set("X-Request-Id", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
	require.NotNil(t, scoped)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "/templates/:id", fields["route"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
}
