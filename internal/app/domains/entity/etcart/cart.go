package etcart

import "strings"

// ShippingParams 运费计算入参
// To 为空表示免邮预览（不调用承运商）；Items 为空是空购物车错误场景
type ShippingParams struct {
	From                   *Address
	To                     *Address
	Items                  []*CartItem
	IsCheckoutConfirmation bool
}

// Address 地址信息
type Address struct {
	Zip          string
	Street       string
	Number       int
	Complement   string
	Borough      string
	City         string
	Province     string
	ProvinceCode string
}

// DigitsZip 返回去掉非数字字符后的邮编
func (a *Address) DigitsZip() string {
	if a == nil {
		return ""
	}
	return OnlyDigits(a.Zip)
}

// CartItem 购物车商品
type CartItem struct {
	ProductID  string
	SKU        string
	Quantity   int
	Price      float64
	FinalPrice *float64
	Weight     *Measure
	Dimensions *Dimensions
}

// EffectivePrice 商品实际单价，优先取促销价 final_price
func (i *CartItem) EffectivePrice() float64 {
	if i.FinalPrice != nil {
		return *i.FinalPrice
	}
	return i.Price
}

// UnitWeightGrams 单件重量（克）
// kg 乘 1000，mg 除 1000，其余按克处理；缺失或为零返回 0
func (i *CartItem) UnitWeightGrams() float64 {
	w := i.Weight
	if w == nil || w.Value == 0 {
		return 0
	}
	switch w.Unit {
	case "kg":
		return w.Value * 1000
	case "mg":
		return w.Value / 1000
	default:
		return w.Value
	}
}

// Measure 带单位的度量值
type Measure struct {
	Value float64
	Unit  string
}

// Centimeters 换算为厘米
// m 乘 100，mm 除 10，其余按厘米处理；缺失或为零返回 0
func (m *Measure) Centimeters() float64 {
	if m == nil || m.Value == 0 {
		return 0
	}
	switch m.Unit {
	case "m":
		return m.Value * 100
	case "mm":
		return m.Value / 10
	default:
		return m.Value
	}
}

// Dimensions 商品三边尺寸
type Dimensions struct {
	Height *Measure
	Width  *Measure
	Length *Measure
}

// OnlyDigits 去掉字符串中的非数字字符
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
