package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the originating client address, preferring forwarding
// headers set by the edge proxy over the socket peer.
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		// First hop is the originating client.
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return c.ClientIP()
}
