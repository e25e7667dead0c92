package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the token from a bearer-scheme Authorization header,
// matching the scheme case-insensitively. An absent or non-bearer header
// yields the empty string, which the services treat as "no token".
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
