package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/utils"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func setupGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/member", RequireAuth(testSecret), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"org_id": identity.OrgID})
	})
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{ID: 1, Role: role, OrgID: 9}, testSecret)
	require.NoError(t, err)
	return token
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r := setupGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"No token, authorization denied"}`, w.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := setupGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Token is not valid"}`, w.Body.String())
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := setupGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleMember))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"org_id":9}`, w.Body.String())
}

func TestRequireAdmin_MemberForbidden(t *testing.T) {
	r := setupGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleMember))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	r := setupGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleOrgAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
