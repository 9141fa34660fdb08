package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		utils.InfoLogger.Printf("%s | %3d | %13v | %s",
			c.Request.Method, c.Writer.Status(), time.Since(start), path)
	}
}
