package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/response"
)

const (
	HeaderInternalKey = "X-Internal-Key"
	HeaderUserID      = "X-User-ID"

	scopeKey = "scope"
)

// Auth trusts the user id forwarded by the gateway once the shared internal key matches.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if m.internalKey != "" {
			key := c.GetHeader(HeaderInternalKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
				m.l.Warnf(ctx, "middleware.Auth: invalid internal key from %s", c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		SetScope(c, model.Scope{UserID: userID})
		c.Next()
	}
}

// SetScope stores the caller's scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
