package middleware

import (
	"net/http"
	"time"

	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"

	keyRequestID = "request_id"
)

// RequestID propagates the caller's X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(keyRequestID, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, if any.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(keyRequestID)
}

// Logger writes one line per request. 5xx responses are logged at error
// and 4xx at warn.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", RequestIDFrom(c)),
		}
		if p, ok := PrincipalFrom(c); ok {
			fields = append(fields, zap.String("principal", p.Actor()), zap.String("role", string(p.Role)))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 in the API error format.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", RequestIDFrom(c)),
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
