package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/util"
)

const testSecret = "test_secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims LockeyClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func claimsFor(sub, role string, expires time.Time) LockeyClaims {
	return LockeyClaims{
		StandardClaims: jwt.StandardClaims{Subject: sub, ExpiresAt: expires.Unix()},
		Role:           role,
	}
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		identity, err := util.GetIdentityFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	admin := r.Group("/admin", RequireRole(model.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
		claimsFor("emp@example.com", model.RoleEmployee, time.Now().Add(time.Hour)))

	w := do(r, "/whoami", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sub":"emp@example.com","role":"employee"}`, w.Body.String())
}

func TestAuthenticate_Rejects(t *testing.T) {
	r := authRouter()
	valid := claimsFor("emp@example.com", model.RoleEmployee, time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), valid)},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			claimsFor("emp@example.com", model.RoleEmployee, time.Now().Add(-time.Minute)))},
		{"no subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			claimsFor("", model.RoleEmployee, time.Now().Add(time.Hour)))},
		{"unknown role", signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			claimsFor("emp@example.com", "root", time.Now().Add(time.Hour)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/whoami", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := authRouter()
	employee := signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
		claimsFor("emp@example.com", model.RoleEmployee, time.Now().Add(time.Hour)))
	admin := signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
		claimsFor("admin@example.com", model.RoleAdmin, time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusForbidden, do(r, "/admin/ping", employee).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/admin/ping", admin).Code)
}

func TestAuthenticate_EmptySecretRejectsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(""))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	token := signToken(t, jwt.SigningMethodHS256, []byte(""),
		claimsFor("emp@example.com", model.RoleEmployee, time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusUnauthorized, do(r, "/x", token).Code)
}
