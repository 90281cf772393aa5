package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the browser client to reach the API from any
// origin. Credentials stay disabled since auth rides in the bearer header.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		ExposeHeaders: []string{"X-Session-ID"},
		MaxAge:        12 * time.Hour,
	})
}
