package request

import "github.com/ecomplus/app-pakman/internal/app/domains/entity/etprimitive"

// CalculateShippingRequest 运费计算模块请求体
// 平台约定：{ params, application: { data, hidden_data } }
type CalculateShippingRequest struct {
	Params      *ShippingParams `json:"params" binding:"required"`
	Application *Application    `json:"application"`
}

// Application 应用配置载荷，data 为商户公开配置，hidden_data 为私密配置
type Application struct {
	Data       *AppConfig `json:"data"`
	HiddenData *AppConfig `json:"hidden_data"`
}

// ShippingParams 运费计算参数
// to 缺失表示免邮预览，items 缺失是空购物车错误场景
type ShippingParams struct {
	From                   *Address    `json:"from"`
	To                     *Address    `json:"to"`
	Items                  []*CartItem `json:"items"`
	IsCheckoutConfirmation bool        `json:"is_checkout_confirmation"`
}

// Address 地址信息，zip 可能带格式符
type Address struct {
	Zip          string `json:"zip" example:"01310-100"`
	Street       string `json:"street" example:"Avenida Paulista"`
	Number       int    `json:"number" example:"1000"`
	Complement   string `json:"complement"`
	Borough      string `json:"borough"`
	City         string `json:"city" example:"São Paulo"`
	Province     string `json:"province"`
	ProvinceCode string `json:"province_code" example:"SP"`
}

// CartItem 购物车商品
type CartItem struct {
	ProductID  string        `json:"product_id" example:"5f0000000000000000000000"`
	SKU        string        `json:"sku" example:"TSH-001"`
	Quantity   int           `json:"quantity" example:"2"`
	Price      float64       `json:"price" example:"19.9"`
	FinalPrice *float64      `json:"final_price"`
	Weight     *Measure      `json:"weight"`
	Dimensions *DimensionSet `json:"dimensions"`
}

// Measure 带单位的度量值，重量默认 g，边长默认 cm
type Measure struct {
	Value float64 `json:"value" example:"0.5"`
	Unit  string  `json:"unit" example:"kg"`
}

// DimensionSet 商品三边尺寸
type DimensionSet struct {
	Height *Measure `json:"height"`
	Width  *Measure `json:"width"`
	Length *Measure `json:"length"`
}

// AppConfig 商户配置对象（data 与 hidden_data 结构一致）
type AppConfig struct {
	APIKey                string              `json:"apikey"`
	Zip                   string              `json:"zip"`
	Label                 string              `json:"label"`
	FreeShippingFromValue *float64            `json:"free_shipping_from_value"`
	FreeShippingRules     []*FreeShippingRule `json:"free_shipping_rules"`
	AdditionalPrice       *float64            `json:"additional_price"`
	PostingDeadline       *PostingDeadline    `json:"posting_deadline"`
}

// FreeShippingRule 免邮规则配置
type FreeShippingRule struct {
	ZipRange      *ZipRange `json:"zip_range"`
	MinAmount     *float64  `json:"min_amount"`
	ProductIDs    []string  `json:"product_ids"`
	AllProductIDs bool      `json:"all_product_ids"`
}

// ZipRange 邮编区间，边界可能被存成数字或字符串
type ZipRange struct {
	Min etprimitive.FlexString `json:"min"`
	Max etprimitive.FlexString `json:"max"`
}

// PostingDeadline 发货时限覆盖配置
type PostingDeadline struct {
	Days          *int  `json:"days"`
	WorkingDays   *bool `json:"working_days"`
	AfterApproval *bool `json:"after_approval"`
}
