package middleware

import (
	"net/http"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/apperror"
	"contact-relay-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware enforces the origin allow-list.
//
// Matching is exact: scheme, host and port must equal a configured entry.
// Requests without an Origin header (curl, server-to-server) pass through.
// Requests from any other origin are rejected here, before a handler runs.
// The rejection is rendered by ErrorHandler, which must run earlier in the chain.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if origin == "" {
			c.Next()
			return
		}

		if !allowed[origin] {
			logger.Log.Warn("Origin rejected",
				"origin", origin,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
			c.Error(apperror.Forbidden(domain.MsgOriginNotAllowed))
			c.Abort()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		c.Header("Access-Control-Max-Age", "86400") // 24 hours

		// Preflight answers 200, some legacy browsers choke on 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
