package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Learnhub/pkg/context"
	"Learnhub/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret, time.Hour), func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid, "role": context.GetRole(c)})
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newRouter()
	token, err := jwt.GenerateToken(secret, 7, "student", jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	refresh, err := jwt.GenerateToken(secret, 7, "student", jwt.TypeRefresh, time.Hour)
	require.NoError(t, err)
	expiring, err := jwt.GenerateToken(secret, 7, "student", jwt.TypeAccess, time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		url    string
		header string
		status int
		renew  bool
	}{
		{name: "header", url: "/me", header: "Bearer " + token, status: http.StatusOK},
		{name: "query", url: "/me?token=" + token, status: http.StatusOK},
		{name: "missing", url: "/me", status: http.StatusUnauthorized},
		{name: "bad scheme", url: "/me", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "refresh token", url: "/me", header: "Bearer " + refresh, status: http.StatusUnauthorized},
		{name: "garbage", url: "/me", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "renew", url: "/me", header: "Bearer " + expiring, status: http.StatusOK, renew: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"uid":7,"role":"student"}`, w.Body.String())
			}
			assert.Equal(t, tc.renew, w.Header().Get("X-New-Access-Token") != "")
		})
	}
}
