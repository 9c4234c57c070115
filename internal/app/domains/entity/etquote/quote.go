package etquote

import "github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"

// Pakman 集成的固定标识
const (
	CarrierName  = "pakman transportadora"
	ServiceName  = "pakman_name"
	ServiceCode  = "pakman"
	DefaultLabel = "Transportadora"

	AdditionalPriceTag   = "additional_price"
	AdditionalPriceLabel = "Adicional padrão"

	DefaultPostingDays = 3
)

// DefaultFlags 报价行默认标记
func DefaultFlags() []string {
	return []string{"pakman-ws", "pakman-transportadora"}
}

// Quote 一次运费计算的结果
type Quote struct {
	FreeShippingFromValue *float64
	Services              []*Service
}

// Service 返回给平台的单个配送服务
type Service struct {
	Label       string
	Carrier     string
	ServiceName string
	ServiceCode string
	Line        *Line
}

// Line 报价行：价格、时效及附加费/折扣
type Line struct {
	From                 *etcart.Address
	To                   *etcart.Address
	Price                float64
	TotalPrice           float64
	Discount             float64
	DeliveryDays         int
	WorkingDays          bool
	PostingDeadlineDays  int
	PostingWorkingDays   *bool
	PostingAfterApproval *bool
	Flags                []string
	Additionals          []*Additional
}

// Additional 附加费项
type Additional struct {
	Tag   string
	Label string
	Price float64
}
