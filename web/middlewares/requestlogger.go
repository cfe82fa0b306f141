package middlewares

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"simplisafe.com/falcon/infrastructure/communication"
)

// RequestLogger tags every request with an id, logs the outcome and
// forwards server-side failures to the error channel. Client errors are
// logged but never paged on.
func RequestLogger(notifier *communication.Slack) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestId", requestID)
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		log.Printf("[%s] %s %s -> %d (%s)", requestID, c.Request.Method, c.Request.URL.Path, status, latency)

		for _, ginErr := range c.Errors {
			log.Printf("[%s] error: %v", requestID, ginErr.Err)
		}

		if status >= 500 && notifier != nil {
			message := fmt.Sprintf("falcon %s %s -> %d", c.Request.Method, c.Request.URL.Path, status)
			if len(c.Errors) > 0 {
				message = fmt.Sprintf("%s: %v", message, c.Errors.Last().Err)
			}
			if err := notifier.Error(message); err != nil {
				log.Printf("[%s] slack notify failed: %v", requestID, err)
			}
		}
	}
}
