package mdfreeship

import (
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
)

// 免邮评估模块
// 职责：
// 1. 以商户静态门槛 free_shipping_from_value 作为初始值
// 2. 按顺序评估免邮规则：无条件规则立即短路，有门槛规则只抬高不降低
// 3. 邮编区间按数字串做字典序比较，缺失边界视为该侧无界

// StaticThreshold 读取商户静态免邮门槛，未配置或为负返回 nil
// 免邮预览（无收货地址）只用这一步的结果
func StaticThreshold(opts *etoptions.MerchantOptions) *float64 {
	if opts.FreeShippingFromValue == nil || *opts.FreeShippingFromValue < 0 {
		return nil
	}
	v := *opts.FreeShippingFromValue
	return &v
}

// Evaluate 计算免邮门槛
// 返回 nil 表示没有免邮配置，0 表示无条件免邮，正数为起始金额
func Evaluate(opts *etoptions.MerchantOptions, items []*etcart.CartItem, destinationZip string) *float64 {
	threshold := StaticThreshold(opts)

	for _, rule := range opts.FreeShippingRules {
		if rule == nil || !zipRangeMatch(rule.ZipRange, destinationZip) {
			continue
		}
		// 既没有门槛也没有商品约束的规则没有意义，跳过
		if rule.MinAmount == nil && len(rule.ProductIDs) == 0 {
			continue
		}

		matched := true
		if len(rule.ProductIDs) > 0 {
			matched = matchProducts(rule, items)
		}

		if rule.MinAmount == nil {
			// 无门槛且商品约束满足：无条件免邮，停止评估后续规则
			if matched {
				zero := 0.0
				return &zero
			}
			continue
		}

		// 有门槛的规则只在严格大于当前记录值时生效
		if matched && (threshold == nil || *rule.MinAmount > *threshold) {
			v := *rule.MinAmount
			threshold = &v
		}
	}

	return threshold
}

// zipRangeMatch 校验目的地邮编是否落在规则区间内
// 没有配置区间、或没有目的地邮编时直接通过
func zipRangeMatch(zr *etoptions.ZipRange, destinationZip string) bool {
	if destinationZip == "" || zr == nil {
		return true
	}
	min := etcart.OnlyDigits(zr.Min)
	max := etcart.OnlyDigits(zr.Max)
	if min != "" && destinationZip < min {
		return false
	}
	if max != "" && destinationZip > max {
		return false
	}
	return true
}

// matchProducts 商品约束匹配
// all_product_ids 为真要求购物车所有商品都在集合内，否则命中任意一个即可
func matchProducts(rule *etoptions.FreeShippingRule, items []*etcart.CartItem) bool {
	ids := make(map[string]struct{}, len(rule.ProductIDs))
	for _, id := range rule.ProductIDs {
		ids[id] = struct{}{}
	}

	if rule.AllProductIDs {
		for _, item := range items {
			if _, ok := ids[item.ProductID]; !ok {
				return false
			}
		}
		return true
	}

	for _, item := range items {
		if _, ok := ids[item.ProductID]; ok {
			return true
		}
	}
	return false
}
