package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet_ledger_app/internal/middleware"
	"github.com/walletapp/wallet_ledger_app/internal/utils"
)

const authTestSecret = "test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(authTestSecret), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthRouter(t)
	token, err := utils.GenerateJWT("user-1", authTestSecret, time.Hour, "wallet-ledger")
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthRouter(t)

	w := doAuthRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthRouter(t)

	w := doAuthRequest(r, "Token abc.def.ghi")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthRouter(t)
	token, err := utils.GenerateJWT("user-1", authTestSecret, -time.Minute, "wallet-ledger")
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := newAuthRouter(t)
	token, err := utils.GenerateJWT("user-1", "other-secret", time.Hour, "wallet-ledger")
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_EmptySubject(t *testing.T) {
	r := newAuthRouter(t)
	token, err := utils.GenerateJWT("", authTestSecret, time.Hour, "wallet-ledger")
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
