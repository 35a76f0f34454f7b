package main

import (
	"time"

	"tripcost/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps a caller-supplied X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// TraceLoggerMiddleware logs each request with its trace_id and span_id when
// the request carries a valid span.
func TraceLoggerMiddleware(zlogger logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		fields := []logger.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.FullPath()},
			{Key: "request_id", Value: c.GetString("request_id")},
		}

		span := trace.SpanFromContext(c.Request.Context())
		if sc := span.SpanContext(); sc.IsValid() {
			traceID := sc.TraceID().String()
			spanID := sc.SpanID().String()

			c.Set("trace_id", traceID)
			c.Set("span_id", spanID)
			fields = append(fields,
				logger.Field{Key: "trace_id", Value: traceID},
				logger.Field{Key: "span_id", Value: spanID},
			)
		}

		zlogger.Debug("incoming request", fields...)

		c.Next()

		fields = append(fields,
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
		)
		if c.Writer.Status() >= 500 {
			zlogger.Error("request completed", fields...)
			return
		}
		zlogger.Info("request completed", fields...)
	}
}
