package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"

	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
	"github.com/ecomplus/app-pakman/internal/app/server/handlers/shipping"
	"github.com/ecomplus/app-pakman/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
// closing 在优雅停机期间置位，健康检查转为 503 以便摘流
func SetupRoutes(
	shippingHandler *shipping.ShippingHandler,
	log logger.Logger,
	closing *atomic.Bool,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		if closing.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "closing",
				"service": "app-pakman",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "app-pakman",
			"message": "Service is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	modules := r.Group("/ecom/modules")
	{
		modules.POST("/calculate-shipping", shippingHandler.Calculate)
	}

	return r
}
