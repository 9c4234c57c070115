package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
	"github.com/ecomplus/app-pakman/internal/app/pkg/metric"
)

// RequestLogger 请求日志中间件
// 生成 trace_id、提取平台携带的 X-Store-ID，注入 context 供全链路日志使用
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := context.WithValue(c.Request.Context(), logger.TraceIDKey, uuid.New().String())
		if storeID := c.GetHeader("X-Store-ID"); storeID != "" {
			ctx = context.WithValue(ctx, logger.StoreIDKey, storeID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		metric.ObserveRequest(elapsed, status)
		log.Infof(ctx, "%s %s status=%d elapsed=%s", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
