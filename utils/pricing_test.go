package utils

import (
	"testing"

	"github.com/arundas-dev/CycleKart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLineCost(t *testing.T) {
	tests := []struct {
		name          string
		tyreType      string
		brandType     string
		wantSurcharge float64
	}{
		{"tubeless ignores brand", TyreTypeTubeless, BrandTypeBranded, 0},
		{"tubeless non-branded", TyreTypeTubeless, BrandTypeNonBranded, 0},
		{"tube-tyre non-branded", TyreTypeTube, BrandTypeNonBranded, 300},
		{"tube-tyre branded", TyreTypeTube, BrandTypeBranded, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surcharge, perUnit := DeriveLineCost(2000, tt.tyreType, tt.brandType)
			assert.Equal(t, tt.wantSurcharge, surcharge)
			assert.Equal(t, 2000+tt.wantSurcharge, perUnit)
		})
	}
}

func TestCartItemDerivedAmounts(t *testing.T) {
	// tube-tyre + branded on a 1x1 bundle prices the whole surcharge into the line
	surcharge, perUnit := DeriveLineCost(2000, TyreTypeTube, BrandTypeBranded)
	item := CartItem{
		CostPerUnit:    2000,
		Surcharge:      surcharge,
		BundleSize:     1,
		BundleQuantity: 1,
	}
	assert.Equal(t, 2400.0, perUnit)
	assert.Equal(t, 2400.0, item.UnitCost())
	assert.Equal(t, 1, item.Units())
	assert.Equal(t, 2400.0, item.LineTotal())
}

func baseCart() []CartItem {
	return []CartItem{{
		ProductID:      1,
		CostPerUnit:    2000,
		TyreType:       TyreTypeTubeless,
		BundleSize:     5,
		BundleQuantity: 2,
	}}
}

func TestComputeTotalsNoCoupon(t *testing.T) {
	result := ComputeTotals(baseCart(), nil)

	assert.Equal(t, 20000.0, result.Subtotal)
	assert.Equal(t, 0.0, result.FlatDiscount)
	assert.Equal(t, 0.0, result.PerCycleDiscount)
	assert.InDelta(t, 2400.0, result.GST, 1e-9)
	assert.InDelta(t, 22400.0, result.Total, 1e-9)
	assert.False(t, result.DiscountApplied)
	assert.Empty(t, result.CouponCode)
}

func TestComputeTotalsTotalAmountCoupon(t *testing.T) {
	terms := &CouponTerms{Code: "FLAT1000", Type: models.CouponTypeTotalAmount, Discount: 1000}
	result := ComputeTotals(baseCart(), terms)

	assert.Equal(t, 20000.0, result.Subtotal)
	assert.Equal(t, 1000.0, result.FlatDiscount)
	assert.Equal(t, 0.0, result.PerCycleDiscount)
	assert.InDelta(t, 2280.0, result.GST, 1e-9)
	assert.InDelta(t, 21280.0, result.Total, 1e-9)
	assert.True(t, result.DiscountApplied)
	assert.Equal(t, "FLAT1000", result.CouponCode)
	assert.Equal(t, models.CouponTypeTotalAmount, result.CouponType)
}

func TestComputeTotalsPerCycleCoupon(t *testing.T) {
	terms := &CouponTerms{Code: "CYCLE10", Type: models.CouponTypePerCycle, Discount: 10}
	result := ComputeTotals(baseCart(), terms)

	assert.Equal(t, 20000.0, result.Subtotal)
	assert.Equal(t, 0.0, result.FlatDiscount)
	assert.InDelta(t, 2000.0, result.PerCycleDiscount, 1e-9)
	assert.InDelta(t, 2160.0, result.GST, 1e-9)
	assert.InDelta(t, 20160.0, result.Total, 1e-9)
	assert.True(t, result.DiscountApplied)
}

func TestComputeTotalsDiscountsMutuallyExclusive(t *testing.T) {
	items := baseCart()

	perCycle := ComputeTotals(items, &CouponTerms{Code: "A", Type: models.CouponTypePerCycle, Discount: 10})
	assert.Zero(t, perCycle.FlatDiscount)
	assert.NotZero(t, perCycle.PerCycleDiscount)

	flat := ComputeTotals(items, &CouponTerms{Code: "B", Type: models.CouponTypeTotalAmount, Discount: 500})
	assert.NotZero(t, flat.FlatDiscount)
	assert.Zero(t, flat.PerCycleDiscount)
}

func TestComputeTotalsSubtotalSumsLines(t *testing.T) {
	items := []CartItem{
		{CostPerUnit: 2000, BundleSize: 5, BundleQuantity: 2},              // 20000
		{CostPerUnit: 1500, Surcharge: 300, BundleSize: 1, BundleQuantity: 3}, // 5400
		{CostPerUnit: 800, Surcharge: 400, BundleSize: 2, BundleQuantity: 1},  // 2400
	}
	result := ComputeTotals(items, nil)

	var want float64
	for _, item := range items {
		want += item.UnitCost() * float64(item.Units())
	}
	require.Equal(t, want, result.Subtotal)
	assert.InDelta(t, want*1.12, result.Total, 1e-9)
}

func TestComputeTotalsNoFloorOnOverDiscount(t *testing.T) {
	// A flat discount larger than the subtotal passes through as a negative
	// total; the engine does not clamp at zero
	items := []CartItem{{CostPerUnit: 100, BundleSize: 1, BundleQuantity: 1}}
	terms := &CouponTerms{Code: "BIG", Type: models.CouponTypeTotalAmount, Discount: 500}

	result := ComputeTotals(items, terms)
	assert.InDelta(t, -400*1.12, result.Total, 1e-9)
	assert.True(t, result.Total < 0)
	assert.True(t, result.DiscountApplied)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	result := ComputeTotals(nil, nil)
	assert.Zero(t, result.Subtotal)
	assert.Zero(t, result.Total)
	assert.False(t, result.DiscountApplied)
}

func TestComputeTotalsTaxAppliesToDiscountedSubtotal(t *testing.T) {
	items := baseCart()
	terms := &CouponTerms{Code: "FLAT", Type: models.CouponTypeTotalAmount, Discount: 3000}
	result := ComputeTotals(items, terms)

	discounted := result.Subtotal - result.FlatDiscount - result.PerCycleDiscount
	assert.InDelta(t, discounted*GSTRate, result.GST, 1e-9)
	assert.InDelta(t, discounted*(1+GSTRate), result.Total, 1e-9)
}
