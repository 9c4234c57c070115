package pakman

import (
	"fmt"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etprimitive"
)

// QuotationRequest 报价请求体
// 字段名跟随承运商接口定义（葡语 itens）
type QuotationRequest struct {
	Address Address `json:"address"`
	Items   []*Item `json:"itens"`
}

// Address 承运商侧地址，只收纯数字邮编
type Address struct {
	ZipCode string `json:"zipCode"`
}

// Item 单件包裹，价值单位为分，尺寸厘米、重量克
type Item struct {
	ProductValue int64         `json:"productValue"`
	Dimension    ItemDimension `json:"dimension"`
}

// ItemDimension 包裹尺寸与重量
type ItemDimension struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

// QuotationResponse 报价成功响应
// serviceLevelAgreement 可能是字符串或数字，表示时效天数
type QuotationResponse struct {
	Cost                  float64            `json:"cost"`
	ServiceLevelAgreement etprimitive.FlexInt `json:"serviceLevelAgreement"`
}

// CarrierError 承运商调用失败
// BusinessMessage 非空表示承运商明确拒绝（解析自响应体的 data 字段）
// StatusCode 为 0 表示纯传输失败（网络错误、超时）
type CarrierError struct {
	StatusCode      int
	BusinessMessage string
	Message         string
	Err             error
}

// Error 实现 error 接口
func (e *CarrierError) Error() string {
	if e.BusinessMessage != "" {
		return e.BusinessMessage
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("pakman quotation failed: status=%d", e.StatusCode)
}

// Unwrap 暴露底层错误
func (e *CarrierError) Unwrap() error {
	return e.Err
}
