package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for rate limiting. Proxy
// headers take precedence over the socket address so limits apply to
// the original client rather than the load balancer in front of it.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For lists the client first, then each proxy hop.
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	// RemoteAddr is normally host:port; keep the raw value when it is not.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
