package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ConfirmHeader must be "true" on destructive requests.
const ConfirmHeader = "X-Confirm"

// RequireConfirm blocks destructive actions (delete, cancel) that were not
// explicitly confirmed by the admin, via header or ?confirm=true.
func RequireConfirm() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := c.GetHeader(ConfirmHeader)
		if v == "" {
			v = c.Query("confirm")
		}
		if ok, _ := strconv.ParseBool(v); !ok {
			c.AbortWithStatusJSON(http.StatusPreconditionRequired, gin.H{"error": "this action must be confirmed"})
			return
		}
		c.Next()
	}
}
