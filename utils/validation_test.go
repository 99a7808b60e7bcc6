package utils

import (
	"testing"

	"github.com/arundas-dev/CycleKart/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"mountain-bikes", true},
		{"kids", true},
		{"bmx-20", true},
		{"", false},
		{"Mountain-Bikes", false},
		{"road bikes", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"under_score", false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			valid, _ := ValidateSlug(tt.slug)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mountain Bikes", "mountain-bikes"},
		{"Kids' BMX 16\"", "kids-bmx-16"},
		{"  Road  &  Gravel  ", "road-gravel"},
		{"Electric", "electric"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"arun das", "Arun Das"},
		{"PRIYA", "Priya"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.in))
	}
}

func TestValidateCouponValue(t *testing.T) {
	// perCycle carries a percentage
	assert.NoError(t, ValidateCouponValue(models.CouponTypePerCycle, 10))
	assert.NoError(t, ValidateCouponValue(models.CouponTypePerCycle, 100))
	assert.Error(t, ValidateCouponValue(models.CouponTypePerCycle, 0))
	assert.Error(t, ValidateCouponValue(models.CouponTypePerCycle, 101))
	assert.Error(t, ValidateCouponValue(models.CouponTypePerCycle, -5))

	// totalAmount carries an absolute amount
	assert.NoError(t, ValidateCouponValue(models.CouponTypeTotalAmount, 1000))
	assert.NoError(t, ValidateCouponValue(models.CouponTypeTotalAmount, 150000))
	assert.Error(t, ValidateCouponValue(models.CouponTypeTotalAmount, 0))
	assert.Error(t, ValidateCouponValue(models.CouponTypeTotalAmount, -1))

	// Unknown types are rejected outright
	assert.Error(t, ValidateCouponValue("percent", 10))
	assert.Error(t, ValidateCouponValue("", 10))
}

func TestValidateTyreSelection(t *testing.T) {
	tests := []struct {
		name      string
		tyreType  string
		brandType string
		valid     bool
	}{
		{"tube branded", TyreTypeTube, BrandTypeBranded, true},
		{"tube non-branded", TyreTypeTube, BrandTypeNonBranded, true},
		{"tube missing brand", TyreTypeTube, "", false},
		{"tubeless no brand", TyreTypeTubeless, "", true},
		{"tubeless with brand", TyreTypeTubeless, BrandTypeBranded, true},
		{"tubeless bogus brand", TyreTypeTubeless, "premium", false},
		{"unknown tyre", "solid", BrandTypeBranded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateTyreSelection(tt.tyreType, tt.brandType)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
}
