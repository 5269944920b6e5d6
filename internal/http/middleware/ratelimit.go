// README: Per-client rate limiting for plan generation.
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/modules/limiter"
)

// RateLimitedMessage is shown to clients that spent their window budget.
const RateLimitedMessage = "リクエストが多すぎます。しばらくしてからお試しください。"

// RateLimit rejects clients that exceeded the per-window budget, keyed by
// client IP. A nil service passes everything through, and Redis failures
// fail open.
func RateLimit(svc *limiter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := svc.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limit check: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": RateLimitedMessage})
			return
		}
		c.Next()
	}
}
