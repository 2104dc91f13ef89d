package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/palepusrinivas/guava-adminpanel-sub002/audit"
	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

// RequireSession validates the console bearer, places the admin into the gin
// context and the upstream token and session id into the request context.
// Websocket clients may pass the bearer as ?access_token=.
func RequireSession(svc authpkg.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}

		p, err := svc.Session(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authpkg.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load session", "detail": err.Error()})
			return
		}

		c.Set("session_id", p.SessionID)
		c.Set("admin_email", p.Email)
		ctx := upstream.WithToken(c.Request.Context(), p.UpstreamToken)
		ctx = resource.WithSession(ctx, p.SessionID)
		c.Request = c.Request.WithContext(audit.WithActor(ctx, p.Email))
		c.Next()
	}
}

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(c.Query("access_token"))
}
