package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meli-labs/seller-dashboard/internal/token"
)

const errUnauthorized = "Unauthorized"

// Auth validates a Bearer session token and sets "userID" in the gin
// context. Every failure mode (missing header, malformed token, bad
// signature, expiry) collapses into the same 401.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
