package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFHeader is the header every API call, mutating or not, must carry.
const CSRFHeader = "X-CSRF-Token"

// CSRF rejects requests whose token header doesn't match the configured
// token. The token is explicit configuration handed to the client, not
// ambient page state. An empty configured token disables the check.
func CSRF(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		got := c.GetHeader(CSRFHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"errors": []string{"invalid or missing CSRF token"}})
			c.Abort()
			return
		}
		c.Next()
	}
}
