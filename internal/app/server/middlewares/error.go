package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomplus/app-pakman/internal/app/pkg/ginx"
)

// ErrorHandler 统一错误处理中间件
// 处理器未消化的错误兜底为 500，响应体保持模块错误格式
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			c.JSON(http.StatusInternalServerError, ginx.ModuleError{
				Error:   "INTERNAL_ERR",
				Message: err.Error(),
			})
		}
	}
}
