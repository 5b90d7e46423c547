package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/util"
)

// Logger logs every request after it is handled, with the caller's subject
// when one was authenticated.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		}
		if identity, err := util.GetIdentityFromContext(c); err == nil {
			fields = append(fields, zap.String("subjectID", identity.SubjectID))
		}

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				logger.Error("Request error", append(fields, zap.String("error", e))...)
			}
			return
		}
		logger.Info("Request processed", fields...)
	}
}
