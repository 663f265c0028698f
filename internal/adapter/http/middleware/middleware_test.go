package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental_backend/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(JWTAuth(testSecret))
	r.GET("/me", func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, p)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := IssueToken(testSecret, entities.Principal{ID: "u-1", Email: "sam@example.com", Role: entities.RoleSales}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u-1","email":"sam@example.com","role":"sales","name":""}`, w.Body.String())
	})

	t.Run("subject only token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "fin@example.com",
			"role": "FINANCE",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "bearer "+token)
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"finance"`)
		assert.Contains(t, w.Body.String(), `"id":"fin@example.com"`)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken("other", entities.Principal{Email: "a@b.com", Role: entities.RoleAdmin}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := IssueToken(testSecret, entities.Principal{Email: "a@b.com", Role: entities.RoleAdmin}, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := IssueToken(testSecret, entities.Principal{Email: "a@b.com", Role: "janitor"}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newAuthRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}

func TestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)), Recovery(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		SetPrincipal(c, entities.Principal{Email: "w@example.com", Role: entities.RoleWarehouse})
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	requests := logs.FilterFieldKey("latency").All()
	require.Len(t, requests, 3)
	assert.Equal(t, zapcore.InfoLevel, requests[0].Level)
	assert.Equal(t, "w@example.com", requests[0].ContextMap()["principal"])
	assert.Equal(t, zapcore.WarnLevel, requests[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, requests[2].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), requests[2].ContextMap()["status"])
}
