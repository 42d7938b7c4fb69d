package api

import (
	"fmt"
	"time"

	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// SessionMiddleware resolves the X-Session-ID header into the roster user
// bound to it and stores both in the gin context. Sessions are
// unauthenticated identity bindings, not an auth layer.
func SessionMiddleware(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			errors.HandleError(c, errors.NewValidationError("X-Session-ID header is required"))
			c.Abort()
			return
		}
		user, err := ledger.CurrentUser(sessionID)
		if err != nil {
			errors.HandleError(c, err)
			c.Abort()
			return
		}
		c.Set("session_id", sessionID)
		c.Set("user", user)
		c.Next()
	}
}

// RateLimitMiddleware applies a per-client-IP, per-path request budget
// backed by an in-memory store.
func RateLimitMiddleware(rps int) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Second,
		Limit:  int64(rps),
	}

	instance := limiter.New(memory.NewStore(), rate, limiter.WithTrustForwardHeader(true))

	return mgin.NewMiddleware(instance, mgin.WithKeyGetter(func(c *gin.Context) string {
		return fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.URL.Path)
	}))
}

// SimulatedLatencyMiddleware delays responses by a fixed duration. It is a
// test hook for exercising loading states; the ledger itself never sleeps.
func SimulatedLatencyMiddleware(latency time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		time.Sleep(latency)
		c.Next()
	}
}
