package middleware

import (
	"net/http"
	"strings"

	"orderdesk/pkg/response"
	"orderdesk/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingAuth  = "认证信息缺失"
	msgLoginExpired = "登录已过期，请重新登录"
)

// Auth verifies the Bearer token and stores the caller in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			response.Fail(c, http.StatusUnauthorized, msgMissingAuth)
			return
		}

		claims, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Fail(c, http.StatusUnauthorized, msgLoginExpired)
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), scope.Payload{
			UserID: claims.Subject,
			OpenID: claims.OpenID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
