package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(manager *jwt.Manager) *gin.Engine {
	router := gin.New()
	guarded := router.Group("/", Auth(manager), RequireAdmin())
	guarded.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(CtxUserID)})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func reason(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	r, _ := body["reason"].(string)
	return r
}

func TestAuthMissingToken(t *testing.T) {
	router := authRouter(jwt.NewManager("secret", time.Hour))

	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing", reason(t, w))
}

func TestAuthExpiredToken(t *testing.T) {
	expired := jwt.NewManager("secret", -time.Minute)
	token, err := expired.Generate("u1", "a@example.com", "admin")
	require.NoError(t, err)

	router := authRouter(jwt.NewManager("secret", time.Hour))
	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "expired", reason(t, w))
}

func TestAuthInvalidToken(t *testing.T) {
	router := authRouter(jwt.NewManager("secret", time.Hour))

	w := request(router, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid", reason(t, w))
}

func TestAuthWrongScheme(t *testing.T) {
	router := authRouter(jwt.NewManager("secret", time.Hour))

	w := request(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid", reason(t, w))
}

func TestAuthNonAdminRole(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	token, err := manager.Generate("u1", "user@example.com", "user")
	require.NoError(t, err)

	router := authRouter(manager)
	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthValidAdmin(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	token, err := manager.Generate("u1", "admin@example.com", "admin")
	require.NoError(t, err)

	router := authRouter(manager)
	w := request(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["user"])
}
