package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Health checks and metric scrapes arrive every few seconds.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger writes one access line per request. 4xx responses log at warn and
// 5xx at error with any errors the handlers attached. Successful hits on the
// quiet paths drop to debug.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := accessLevel(c.Request.URL.Path, status)
		ce := logger.Check(level, "request")
		if ce == nil {
			return
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", routeLabel(c)),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("bytes", max(c.Writer.Size(), 0)),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}

		if requestID := c.GetString(RequestIDKey); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			fields = append(fields, zap.Strings("errors", errs.Errors()))
		}

		ce.Write(fields...)
	}
}

func accessLevel(path string, status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	case quietPaths[path]:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
