package ginx

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ecomplus/app-pakman/internal/app/pkg/errorx"
)

// ModuleError 模块错误响应结构（平台约定：{error, message}）
type ModuleError struct {
	Error   string `json:"error" example:"CALCULATE_ERR"`
	Message string `json:"message" example:"timeout of 6000ms exceeded"`
}

// Success 成功响应（200），模块响应体不加包装直接返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// CalculateError 运费计算业务错误响应
func CalculateError(c *gin.Context, err *errorx.CalculateError) {
	c.JSON(err.Status, ModuleError{
		Error:   err.Code,
		Message: err.Message,
	})
}

// BadRequestWithValidation 请求体绑定失败响应（400）
func BadRequestWithValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, getValidationErrorMessage(fieldErr))
		}
		CalculateError(c, errorx.NewParamsError(strings.Join(messages, "; ")))
		return
	}

	CalculateError(c, errorx.NewParamsError(err.Error()))
}

// getValidationErrorMessage 根据验证错误类型返回友好的错误消息
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
