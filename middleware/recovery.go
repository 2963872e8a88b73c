package middleware

import (
	"log"
	"net/http"

	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
