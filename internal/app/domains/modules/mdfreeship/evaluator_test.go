package mdfreeship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
)

func floatPtr(v float64) *float64 { return &v }

func items(productIDs ...string) []*etcart.CartItem {
	result := make([]*etcart.CartItem, 0, len(productIDs))
	for _, id := range productIDs {
		result = append(result, &etcart.CartItem{ProductID: id})
	}
	return result
}

func TestEvaluate_NoConfiguration(t *testing.T) {
	opts := &etoptions.MerchantOptions{}
	assert.Nil(t, Evaluate(opts, nil, "01310100"))
}

func TestEvaluate_StaticThresholdSeeds(t *testing.T) {
	opts := &etoptions.MerchantOptions{FreeShippingFromValue: floatPtr(150)}

	threshold := Evaluate(opts, nil, "01310100")

	require.NotNil(t, threshold)
	assert.Equal(t, 150.0, *threshold)
}

func TestStaticThreshold_ZeroIsConfigured(t *testing.T) {
	// 显式配置为 0 的门槛必须上报，不能因为是零值被丢掉
	opts := &etoptions.MerchantOptions{FreeShippingFromValue: floatPtr(0)}

	threshold := StaticThreshold(opts)

	require.NotNil(t, threshold)
	assert.Equal(t, 0.0, *threshold)

	// 负值视为未配置
	opts.FreeShippingFromValue = floatPtr(-1)
	assert.Nil(t, StaticThreshold(opts))
}

func TestEvaluate_ZipRange(t *testing.T) {
	rule := &etoptions.FreeShippingRule{
		ZipRange:  &etoptions.ZipRange{Min: "01000000", Max: "05999999"},
		MinAmount: floatPtr(100),
	}
	opts := &etoptions.MerchantOptions{FreeShippingRules: []*etoptions.FreeShippingRule{rule}}

	// 区间内命中
	threshold := Evaluate(opts, nil, "01310100")
	require.NotNil(t, threshold)
	assert.Equal(t, 100.0, *threshold)

	// 区间外不命中
	assert.Nil(t, Evaluate(opts, nil, "90000000"))

	// 缺失边界视为该侧无界
	rule.ZipRange = &etoptions.ZipRange{Min: "80000000"}
	threshold = Evaluate(opts, nil, "99999999")
	require.NotNil(t, threshold)
	assert.Equal(t, 100.0, *threshold)
}

func TestEvaluate_ProductMatch(t *testing.T) {
	cart := items("a", "b")

	// any 语义：命中任意一个商品即可
	anyRule := &etoptions.FreeShippingRule{
		MinAmount:  floatPtr(50),
		ProductIDs: []string{"b", "c"},
	}
	opts := &etoptions.MerchantOptions{FreeShippingRules: []*etoptions.FreeShippingRule{anyRule}}
	require.NotNil(t, Evaluate(opts, cart, "01310100"))

	// all 语义：购物车所有商品都要在集合内
	allRule := &etoptions.FreeShippingRule{
		MinAmount:     floatPtr(50),
		ProductIDs:    []string{"b", "c"},
		AllProductIDs: true,
	}
	opts.FreeShippingRules = []*etoptions.FreeShippingRule{allRule}
	assert.Nil(t, Evaluate(opts, cart, "01310100"))

	allRule.ProductIDs = []string{"a", "b", "c"}
	require.NotNil(t, Evaluate(opts, cart, "01310100"))
}

func TestEvaluate_UnconditionalShortCircuits(t *testing.T) {
	opts := &etoptions.MerchantOptions{
		FreeShippingRules: []*etoptions.FreeShippingRule{
			// 无门槛 + 商品命中 = 无条件免邮，后续规则不再评估
			{ProductIDs: []string{"a"}},
			{MinAmount: floatPtr(999)},
		},
	}

	threshold := Evaluate(opts, items("a"), "01310100")

	require.NotNil(t, threshold)
	assert.Equal(t, 0.0, *threshold)
}

func TestEvaluate_ThresholdNeverLowered(t *testing.T) {
	opts := &etoptions.MerchantOptions{
		FreeShippingRules: []*etoptions.FreeShippingRule{
			{MinAmount: floatPtr(200)},
			{MinAmount: floatPtr(100)},
		},
	}

	// 门槛只抬高不降低：后出现的更低门槛不生效
	threshold := Evaluate(opts, nil, "01310100")
	require.NotNil(t, threshold)
	assert.Equal(t, 200.0, *threshold)

	// 更高的门槛生效
	opts.FreeShippingRules = append(opts.FreeShippingRules, &etoptions.FreeShippingRule{MinAmount: floatPtr(300)})
	threshold = Evaluate(opts, nil, "01310100")
	require.NotNil(t, threshold)
	assert.Equal(t, 300.0, *threshold)
}

func TestEvaluate_SkipsMeaninglessRules(t *testing.T) {
	opts := &etoptions.MerchantOptions{
		FreeShippingRules: []*etoptions.FreeShippingRule{
			nil,
			// 既没门槛也没商品约束
			{ZipRange: &etoptions.ZipRange{Min: "01000000"}},
		},
	}

	assert.Nil(t, Evaluate(opts, nil, "01310100"))
}

func TestEvaluate_EmptyDestinationPassesZipRanges(t *testing.T) {
	opts := &etoptions.MerchantOptions{
		FreeShippingRules: []*etoptions.FreeShippingRule{
			{
				ZipRange:  &etoptions.ZipRange{Min: "01000000", Max: "05999999"},
				MinAmount: floatPtr(100),
			},
		},
	}

	// 没有目的地邮编时区间约束直接通过
	threshold := Evaluate(opts, nil, "")
	require.NotNil(t, threshold)
	assert.Equal(t, 100.0, *threshold)
}
