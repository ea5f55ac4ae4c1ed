package middleware

import (
	"net/http"
	"strings"
	"time"

	"Learnhub/pkg/context"
	"Learnhub/pkg/jwt"
	"Learnhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// 剩余有效期低于该值时在响应头下发新 token
const renewBefore = 5 * time.Minute

// Auth 校验 access token, websocket 握手无法带 header 时从 ?token= 读取
func Auth(secret []byte, expire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "token 无效或已过期")
			return
		}
		if claims.UserID == 0 {
			response.Abort(c, http.StatusUnauthorized, "用户ID无效")
			return
		}

		if jwt.ShouldRenew(claims, renewBefore) {
			if newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Role, jwt.TypeAccess, expire); err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query("token")
		return token, token != ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
