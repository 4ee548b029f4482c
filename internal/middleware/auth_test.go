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
	"github.com/tdhoang/auditflow/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role model.Role, expiry time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID": uint(7),
		"email":  "user@example.com",
		"role":   string(role),
		"exp":    time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testRouter(roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Authorize(testSecret, roles...), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userID": ctx.GetUint(ContextUserID),
			"role":   ctx.GetString(ContextRole),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorizeMissingToken(t *testing.T) {
	w := doRequest(testRouter(model.RoleAdmin), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeGarbageToken(t *testing.T) {
	w := doRequest(testRouter(model.RoleAdmin), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeExpiredToken(t *testing.T) {
	token := signToken(t, model.RoleAdmin, -time.Hour)
	w := doRequest(testRouter(model.RoleAdmin), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeWrongSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	w := doRequest(testRouter(model.RoleAdmin), signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeRoleMismatch(t *testing.T) {
	token := signToken(t, model.RoleAuditor, time.Hour)
	w := doRequest(testRouter(model.RoleAdmin), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorizeAllowed(t *testing.T) {
	token := signToken(t, model.RoleAdmin, time.Hour)
	w := doRequest(testRouter(model.RoleAdmin, model.RoleAuditor), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
}

func TestAuthorizeNoRoleRestriction(t *testing.T) {
	// An empty role list means any authenticated user passes.
	token := signToken(t, model.RoleAuditor, time.Hour)
	w := doRequest(testRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
}
