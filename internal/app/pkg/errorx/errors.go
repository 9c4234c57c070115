package errorx

import "net/http"

// 平台错误码（Calculate Shipping 模块约定）
const (
	CodeAuthErr   = "CALCULATE_AUTH_ERR"   // 商户未配置 apikey
	CodeEmptyCart = "CALCULATE_EMPTY_CART" // 购物车为空
	CodeFailed    = "CALCULATE_FAILED"     // 承运商返回业务错误
	CodeErr       = "CALCULATE_ERR"        // 传输/协议等通用失败
	CodeParamsErr = "CALCULATE_PARAMS_ERR" // 请求体解析失败
)

// CalculateError 运费计算业务错误
// Code 与 Message 会原样写入响应体，Status 决定 HTTP 状态码
type CalculateError struct {
	Code    string
	Status  int
	Message string
}

// Error 实现 error 接口
func (e *CalculateError) Error() string {
	return e.Message
}

// NewAuthError apikey 未配置（商户配置问题，非计算失败）
func NewAuthError() *CalculateError {
	return &CalculateError{
		Code:    CodeAuthErr,
		Status:  http.StatusConflict,
		Message: "Apikey unset on app hidden data (merchant must configure the app)",
	}
}

// NewEmptyCartError 无购物车商品（调用方参数问题）
func NewEmptyCartError() *CalculateError {
	return &CalculateError{
		Code:    CodeEmptyCart,
		Status:  http.StatusBadRequest,
		Message: "Cannot calculate shipping without cart items",
	}
}

// NewCalculateFailed 承运商明确拒绝报价，保留其原始消息
func NewCalculateFailed(message string) *CalculateError {
	return &CalculateError{
		Code:    CodeFailed,
		Status:  http.StatusConflict,
		Message: message,
	}
}

// NewCalculateErr 通用计算失败（网络、超时、响应异常）
func NewCalculateErr(message string) *CalculateError {
	return &CalculateError{
		Code:    CodeErr,
		Status:  http.StatusConflict,
		Message: message,
	}
}

// NewParamsError 请求体绑定/解析失败
func NewParamsError(message string) *CalculateError {
	return &CalculateError{
		Code:    CodeParamsErr,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}
