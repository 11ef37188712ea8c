package middleware

import (
	"net/http"
	"runtime/debug"

	"git.thinkinpower.net/cardcheck/mod"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Recovery turns a panic in a handler into a 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithField("requestId", c.GetString(RequestIDKey)).
					Errorf("panic: %v\n%s", err, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					mod.Failure(mod.ResponseCodeFailure, "internal error"))
			}
		}()
		c.Next()
	}
}
