package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWheelSize(t *testing.T) {
	for _, size := range WheelSizes {
		assert.True(t, ValidWheelSize(size), size)
	}
	assert.False(t, ValidWheelSize("18"))
	assert.False(t, ValidWheelSize(""))
}

func TestPurchasableVariantsFiltersZeroCost(t *testing.T) {
	product := Product{
		Variants: []Variant{
			{WheelSize: "20", CostPerUnit: 0, BundleSize: 5},
			{WheelSize: "24", CostPerUnit: 1800, BundleSize: 5},
			{WheelSize: "26", CostPerUnit: 2200, BundleSize: 1},
		},
	}

	purchasable := product.PurchasableVariants()
	assert.Len(t, purchasable, 2)
	for _, v := range purchasable {
		assert.True(t, v.Purchasable())
		assert.NotEqual(t, "20", v.WheelSize)
	}
}
