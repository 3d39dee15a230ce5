package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoCache disables response caching. The chat UI polls status endpoints and
// must never see stale replies from intermediary caches.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Writer.Header().Set("Pragma", "no-cache")
		c.Writer.Header().Set("Expires", "0")
		c.Next()
	}
}
