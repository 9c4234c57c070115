package mdcart

import (
	"math"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
)

// 购物车归一化模块
// 职责：
// 1. 把异构单位统一换算成承运商口径（克、厘米）
// 2. 按数量展开成单件行（承运商按物理件计价，不是按 SKU+数量）
// 3. 累计购物车小计，留作后续按小计免邮的扩展点

// UnitLine 单件包裹行
type UnitLine struct {
	ValueCents  int64
	HeightCm    float64
	WidthCm     float64
	LengthCm    float64
	WeightGrams float64
}

// Result 归一化结果
type Result struct {
	Lines    []*UnitLine
	Subtotal float64
}

// Normalize 归一化购物车
// 缺失或为零的边长回退到 1cm，承运商会拒绝零体积包裹；缺失重量按 0 处理
func Normalize(items []*etcart.CartItem) *Result {
	result := &Result{Lines: make([]*UnitLine, 0, len(items))}

	for _, item := range items {
		if item == nil {
			continue
		}
		price := item.EffectivePrice()
		result.Subtotal += float64(item.Quantity) * price

		line := &UnitLine{
			ValueCents:  toCents(price),
			WeightGrams: item.UnitWeightGrams(),
			HeightCm:    1,
			WidthCm:     1,
			LengthCm:    1,
		}
		if d := item.Dimensions; d != nil {
			line.HeightCm = orOne(d.Height.Centimeters())
			line.WidthCm = orOne(d.Width.Centimeters())
			line.LengthCm = orOne(d.Length.Centimeters())
		}

		for n := 0; n < item.Quantity; n++ {
			result.Lines = append(result.Lines, line)
		}
	}

	return result
}

// toCents 单价换算为分
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// orOne 零值边长回退到 1cm
func orOne(cm float64) float64 {
	if cm == 0 {
		return 1
	}
	return cm
}
