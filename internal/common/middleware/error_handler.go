package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/pkg/logger"
)

// ErrorHandler catches panics and converts them to proper error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Errorw("panic recovered", "path", c.Request.URL.Path, "panic", r)
				appErr := errors.Internal("internal server error", "")
				c.JSON(appErr.Status, appErr)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format.
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		if err == nil {
			appErr = errors.Internal("internal server error", "")
		} else {
			appErr = errors.Internal("internal server error", err.Error())
		}
	}

	c.JSON(appErr.Status, appErr)
}
