package middleware

import (
	"strconv"
	"time"

	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware handles basic HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		utils.HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		utils.HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
