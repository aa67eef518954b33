package middleware

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	security.Init("test-secret", 1)

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/open", AuthOptionalMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"is_admin": c.GetBool(consts.IsAdminKey)})
	})
	return r
}

func request(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: consts.AdminSessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsMissingCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := request(r, "/admin", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	r := newAuthRouter(t)

	w := request(r, "/admin", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_AcceptsValidSession(t *testing.T) {
	r := newAuthRouter(t)

	token, err := security.GenerateToken()
	require.NoError(t, err)

	w := request(r, "/admin", token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthOptional_VisitorAndAdminViews(t *testing.T) {
	r := newAuthRouter(t)

	w := request(r, "/open", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"is_admin":false`)

	token, err := security.GenerateToken()
	require.NoError(t, err)

	w = request(r, "/open", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"is_admin":true`)
}
