package mdcart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalize_ExpandsQuantityIntoUnitLines(t *testing.T) {
	result := Normalize([]*etcart.CartItem{
		{
			SKU:      "TSH-001",
			Quantity: 2,
			Price:    10,
			Weight:   &etcart.Measure{Value: 500, Unit: "g"},
		},
	})

	// 承运商按物理件计价：2 件展开成 2 行
	require.Len(t, result.Lines, 2)
	for _, line := range result.Lines {
		assert.Equal(t, int64(1000), line.ValueCents)
		assert.Equal(t, 500.0, line.WeightGrams)
	}
	assert.Equal(t, 20.0, result.Subtotal)
}

func TestNormalize_UnitConversions(t *testing.T) {
	result := Normalize([]*etcart.CartItem{
		{
			Quantity: 1,
			Price:    10,
			Weight:   &etcart.Measure{Value: 1, Unit: "kg"},
			Dimensions: &etcart.Dimensions{
				Height: &etcart.Measure{Value: 1, Unit: "m"},
				Width:  &etcart.Measure{Value: 10, Unit: "mm"},
				Length: &etcart.Measure{Value: 15, Unit: "cm"},
			},
		},
	})

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.Equal(t, 1000.0, line.WeightGrams)
	assert.Equal(t, 100.0, line.HeightCm)
	assert.Equal(t, 1.0, line.WidthCm)
	assert.Equal(t, 15.0, line.LengthCm)
}

func TestNormalize_MissingDimensionsFallBackToOneCm(t *testing.T) {
	// 零体积包裹会被承运商拒绝，缺失边长回退到 1cm
	result := Normalize([]*etcart.CartItem{
		{Quantity: 1, Price: 10},
		{
			Quantity:   1,
			Price:      10,
			Dimensions: &etcart.Dimensions{Height: &etcart.Measure{Value: 20, Unit: "cm"}},
		},
	})

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 1.0, result.Lines[0].HeightCm)
	assert.Equal(t, 1.0, result.Lines[0].WidthCm)
	assert.Equal(t, 1.0, result.Lines[0].LengthCm)
	assert.Equal(t, 0.0, result.Lines[0].WeightGrams)

	assert.Equal(t, 20.0, result.Lines[1].HeightCm)
	assert.Equal(t, 1.0, result.Lines[1].WidthCm)
}

func TestNormalize_PriceInCents(t *testing.T) {
	result := Normalize([]*etcart.CartItem{
		{Quantity: 1, Price: 19.99},
	})

	require.Len(t, result.Lines, 1)
	assert.Equal(t, int64(1999), result.Lines[0].ValueCents)
}

func TestNormalize_PrefersFinalPrice(t *testing.T) {
	result := Normalize([]*etcart.CartItem{
		{Quantity: 2, Price: 19.9, FinalPrice: floatPtr(15.9)},
	})

	require.Len(t, result.Lines, 2)
	assert.Equal(t, int64(1590), result.Lines[0].ValueCents)
	assert.InDelta(t, 31.8, result.Subtotal, 0.001)
}

func TestNormalize_EmptyCart(t *testing.T) {
	result := Normalize(nil)
	assert.Empty(t, result.Lines)
	assert.Equal(t, 0.0, result.Subtotal)
}
