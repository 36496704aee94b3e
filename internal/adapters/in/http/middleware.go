package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

const RequestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set("request_id", rid)
		ctx.Header(RequestIDHeader, rid)
		ctx.Next()
	}
}

func requestLogger(logger out.LoggerPort) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		fields := out.LogFields{
			"requestId": ctx.GetString("request_id"),
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
			"status":    ctx.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"remoteIp":  ctx.ClientIP(),
		}

		if len(ctx.Errors) > 0 {
			fields["error"] = ctx.Errors.String()
			logger.Error("http.request", fields)
			return
		}
		logger.Info("http.request", fields)
	}
}

// loadingGuard отвечает 503, пока стор не загрузился
func (c *BookingController) loadingGuard() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c.store.UIState().Loading {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "loading"})
			return
		}
		ctx.Next()
	}
}
