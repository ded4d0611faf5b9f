package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, hierarchy int, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":   1,
		"username":  "testuser",
		"hierarchy": hierarchy,
		"exp":       time.Now().Add(dur).Unix(),
		"iat":       time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "hierarchy": claims.Hierarchy})
	})
	r.GET("/admin", RequireHierarchy(0), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_NoToken(t *testing.T) {
	w := get(testRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	w := get(testRouter(), "/protected", signToken(t, 2, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	w := get(testRouter(), "/protected", signToken(t, 2, -time.Second))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("some-other-secret-entirely-here!"))
	require.NoError(t, err)

	w := get(testRouter(), "/protected", s)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireHierarchy_AdminOnly(t *testing.T) {
	r := testRouter()

	w := get(r, "/admin", signToken(t, 0, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/admin", signToken(t, 2, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
