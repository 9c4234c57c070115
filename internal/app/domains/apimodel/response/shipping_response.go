package response

// CalculateShippingResponse 运费计算模块响应体
// shipping_services 始终存在（预览模式下为空数组）
type CalculateShippingResponse struct {
	FreeShippingFromValue *float64           `json:"free_shipping_from_value,omitempty"`
	ShippingServices      []*ShippingService `json:"shipping_services"`
}

// ShippingService 单个配送服务
type ShippingService struct {
	Label        string        `json:"label" example:"Transportadora"`
	Carrier      string        `json:"carrier" example:"pakman transportadora"`
	ServiceName  string        `json:"service_name" example:"pakman_name"`
	ServiceCode  string        `json:"service_code" example:"pakman"`
	ShippingLine *ShippingLine `json:"shipping_line"`
}

// ShippingLine 报价行
type ShippingLine struct {
	From             *Address         `json:"from,omitempty"`
	To               *Address         `json:"to,omitempty"`
	Price            float64          `json:"price" example:"10.5"`
	TotalPrice       float64          `json:"total_price" example:"10.5"`
	Discount         float64          `json:"discount" example:"0"`
	DeliveryTime     *DeliveryTime    `json:"delivery_time"`
	PostingDeadline  *PostingDeadline `json:"posting_deadline"`
	Flags            []string         `json:"flags"`
	OtherAdditionals []*Additional    `json:"other_additionals,omitempty"`
}

// Address 地址信息
type Address struct {
	Zip          string `json:"zip"`
	Street       string `json:"street,omitempty"`
	Number       int    `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Borough      string `json:"borough,omitempty"`
	City         string `json:"city,omitempty"`
	Province     string `json:"province,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
}

// DeliveryTime 承运商时效
type DeliveryTime struct {
	Days        int  `json:"days" example:"5"`
	WorkingDays bool `json:"working_days" example:"true"`
}

// PostingDeadline 发货时限
type PostingDeadline struct {
	Days          int   `json:"days" example:"3"`
	WorkingDays   *bool `json:"working_days,omitempty"`
	AfterApproval *bool `json:"after_approval,omitempty"`
}

// Additional 附加费项
type Additional struct {
	Tag   string  `json:"tag" example:"additional_price"`
	Label string  `json:"label" example:"Adicional padrão"`
	Price float64 `json:"price" example:"5"`
}
