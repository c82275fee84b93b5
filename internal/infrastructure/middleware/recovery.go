package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/pkg/httputil"
)

// Recovery turns a handler panic into the standard INTERNAL_ERROR response.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Error("panic recovered",
				zap.Any("panic", rec),
				zap.String("route", c.FullPath()),
				zap.String("request_id", httputil.GetRequestID(c)),
				zap.ByteString("stack", debug.Stack()),
			)
			_ = c.Error(fmt.Errorf("panic: %v", rec))

			if !c.Writer.Written() {
				httputil.InternalError(c)
			}
			c.Abort()
		}()
		c.Next()
	}
}
