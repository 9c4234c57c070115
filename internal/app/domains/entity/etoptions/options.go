package etoptions

// MerchantOptions 商户配置（公开 data 与私密 hidden_data 合并后的结果）
// 数值字段用指针区分"未配置"和"配置为 0"，避免丢掉合法的零值
type MerchantOptions struct {
	APIKey                string
	Zip                   string
	Label                 string
	FreeShippingFromValue *float64
	FreeShippingRules     []*FreeShippingRule
	AdditionalPrice       *float64
	PostingDeadline       *PostingDeadline
}

// FreeShippingRule 免邮规则
// MinAmount 为 nil 且商品约束满足时表示无条件免邮
type FreeShippingRule struct {
	ZipRange      *ZipRange
	MinAmount     *float64
	ProductIDs    []string
	AllProductIDs bool
}

// ZipRange 邮编区间，空串表示该侧无界
// 边界按归一化后的数字串做字典序比较（巴西 CEP 固定 8 位）
type ZipRange struct {
	Min string
	Max string
}

// PostingDeadline 商户配置的发货时限，覆盖默认值 {days: 3}
type PostingDeadline struct {
	Days          *int
	WorkingDays   *bool
	AfterApproval *bool
}

// Merge 浅合并两份配置，private 的已设置字段覆盖 public，其余保留
// 纯函数，不修改入参
func Merge(public, private *MerchantOptions) *MerchantOptions {
	merged := &MerchantOptions{}
	apply(merged, public)
	apply(merged, private)
	return merged
}

// apply 将 src 中已设置的字段覆盖到 dst（单层覆盖，不做深合并）
func apply(dst, src *MerchantOptions) {
	if src == nil {
		return
	}
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.Zip != "" {
		dst.Zip = src.Zip
	}
	if src.Label != "" {
		dst.Label = src.Label
	}
	if src.FreeShippingFromValue != nil {
		dst.FreeShippingFromValue = src.FreeShippingFromValue
	}
	if src.FreeShippingRules != nil {
		dst.FreeShippingRules = src.FreeShippingRules
	}
	if src.AdditionalPrice != nil {
		dst.AdditionalPrice = src.AdditionalPrice
	}
	if src.PostingDeadline != nil {
		dst.PostingDeadline = src.PostingDeadline
	}
}
