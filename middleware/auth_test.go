package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-salesforce-cart/utils"
)

func authHandler(tm *utils.TokenManager, t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user-1", claims.UserID)
		reached = true
	})
	return Auth(tm)(next), &reached
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)
	handler, reached := authHandler(tm, t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)
	handler, reached := authHandler(tm, t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	other := utils.NewTokenManager("other-secret", time.Hour)
	token, err := other.Generate("user-1", "jane@example.com")
	require.NoError(t, err)

	tm := utils.NewTokenManager("secret", time.Hour)
	handler, reached := authHandler(tm, t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("user-1", "jane@example.com")
	require.NoError(t, err)

	handler, reached := authHandler(tm, t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	tm := utils.NewTokenManager("secret", -time.Minute)
	token, err := tm.Generate("user-1", "jane@example.com")
	require.NoError(t, err)

	handler, reached := authHandler(tm, t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}
