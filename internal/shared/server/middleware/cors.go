package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"status-backend/internal/shared/config"
)

const (
	corsAllowMethods = "GET,OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-Id"
	corsMaxAge       = "600"
)

// CORS sets CORS headers and handles preflight requests.
// mode is one of config.CORSAllowAll, config.CORSAllowlist or config.CORSNone.
func CORS(mode string, allowedOrigins []string) gin.HandlerFunc {
	if mode == config.CORSNone {
		return func(c *gin.Context) { c.Next() }
	}

	origins := make(map[string]struct{})
	for _, o := range allowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins[trimmed] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		origin := c.GetHeader("Origin")

		switch mode {
		case config.CORSAllowAll:
			h.Set("Access-Control-Allow-Origin", "*")
			setCORSCommon(h)
		case config.CORSAllowlist:
			if origin != "" {
				if _, ok := origins[origin]; ok {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
					setCORSCommon(h)
				}
			}
		}

		if c.Request.Method == http.MethodOptions && origin != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func setCORSCommon(h http.Header) {
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Expose-Headers", "X-Request-Id")
	h.Set("Access-Control-Max-Age", corsMaxAge)
}
