package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
)

// AuthMiddleware verifies the bearer token and attaches the principal to the
// request context. Every failure kind answers the identical 401 body so
// callers cannot probe credential validity; the specific reason only goes to
// the log.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.InfoLogger.Printf("auth: missing Authorization header on %s %s", c.Request.Method, c.Request.URL.Path)
			unauthorized(c)
			return
		}

		scheme, token, _ := strings.Cut(authHeader, " ")
		if scheme != "Bearer" || token == "" {
			utils.InfoLogger.Printf("auth: malformed Authorization header on %s %s", c.Request.Method, c.Request.URL.Path)
			unauthorized(c)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.InfoLogger.Printf("auth: token rejected on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			unauthorized(c)
			return
		}

		c.Set("user_id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	utils.RespondUnauthorized(c, "Invalid or missing credentials")
	c.Abort()
}
