package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"CreditPathAI/internal/auth"
	"CreditPathAI/internal/metrics"
	"CreditPathAI/internal/models"
	"CreditPathAI/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers map[string]models.User

func (f fakeUsers) GetUserByEmail(email string) (models.User, error) {
	u, ok := f[email]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}
	return u, nil
}

type brokenUsers struct{}

func (brokenUsers) GetUserByEmail(string) (models.User, error) {
	return models.User{}, eris.New("disk I/O error")
}

func protectedRouter(tokens *auth.TokenManager, users UserFinder) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens, users), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	return r
}

func get(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	users := fakeUsers{"asha@example.com": {ID: 1, Email: "asha@example.com"}}
	r := protectedRouter(tokens, users)

	valid, err := tokens.GenerateToken(1, "asha@example.com")
	require.NoError(t, err)
	ghost, err := tokens.GenerateToken(2, "ghost@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Not authenticated"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Invalid authorization header"},
		{"no token", "Bearer", http.StatusUnauthorized, "Invalid authorization header"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"unknown user", "Bearer " + ghost, http.StatusUnauthorized, "User not found"},
		{"valid", "Bearer " + valid, http.StatusOK, "asha@example.com"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "asha@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/me", tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestAuthMiddleware_StoreFailure(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.GenerateToken(1, "asha@example.com")
	require.NoError(t, err)

	w := get(protectedRouter(tokens, brokenUsers{}), "/me", "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/login", RateLimit(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/login", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/login", "").Code)
	w := get(r, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.GET("/login", RateLimit(0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/login", "").Code)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.New()
	r := gin.New()
	r.Use(RequestLogger(zap.New(core), m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := get(r, "/ok", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
	assert.Equal(t, "req-123", logs.All()[1].ContextMap()["request_id"])

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDurations))
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.POST("/upload", MaxBodySize(8), func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(data))
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body)))
		return w
	}

	w := post("12345678")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678", w.Body.String())

	assert.Equal(t, http.StatusRequestEntityTooLarge, post("123456789").Code)
}
