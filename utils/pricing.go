package utils

import (
	"github.com/arundas-dev/CycleKart/models"
)

// Tyre and brand selections a cart line can carry
const (
	TyreTypeTube     = "tube-tyre"
	TyreTypeTubeless = "tubeless"

	BrandTypeBranded    = "branded"
	BrandTypeNonBranded = "non-branded"
)

// Per-unit surcharges and the GST rate applied at checkout
const (
	TubeTyreSurcharge = 300.0
	BrandedSurcharge  = 100.0
	GSTRate           = 0.12
)

// ValidTyreType reports whether t is a known tyre selection
func ValidTyreType(t string) bool {
	return t == TyreTypeTube || t == TyreTypeTubeless
}

// ValidBrandType reports whether b is a known brand selection
func ValidBrandType(b string) bool {
	return b == BrandTypeBranded || b == BrandTypeNonBranded
}

// DeriveLineCost computes the per-unit surcharge for a tyre/brand selection and
// the resulting per-unit total. The brand surcharge only applies on top of the
// tube-tyre surcharge; for tubeless tyres the brand selection is ignored.
func DeriveLineCost(costPerUnit float64, tyreType, brandType string) (surcharge, perUnitTotal float64) {
	if tyreType == TyreTypeTube {
		surcharge = TubeTyreSurcharge
		if brandType == BrandTypeBranded {
			surcharge += BrandedSurcharge
		}
	}
	return surcharge, costPerUnit + surcharge
}

// CartItem is one line of a session cart. Costs are baked in when the line is
// added so the pricing engine never reaches back into the catalog.
type CartItem struct {
	ProductID      uint    `json:"product_id"`
	Brand          string  `json:"brand"`
	WheelSize      string  `json:"wheel_size"`
	CostPerUnit    float64 `json:"cost_per_unit"`
	TyreType       string  `json:"tyre_type"`
	BrandType      string  `json:"brand_type"`
	Surcharge      float64 `json:"surcharge"`
	BundleSize     int     `json:"bundle_size"`
	BundleQuantity int     `json:"bundle_quantity"`
}

// UnitCost is the per-unit cost including the tyre/brand surcharge
func (i CartItem) UnitCost() float64 {
	return i.CostPerUnit + i.Surcharge
}

// Units is the total unit count of the line
func (i CartItem) Units() int {
	return i.BundleQuantity * i.BundleSize
}

// LineTotal is the undiscounted total of the line
func (i CartItem) LineTotal() float64 {
	return i.UnitCost() * float64(i.Units())
}

// CouponTerms are the discount parameters a validated coupon resolves to
type CouponTerms struct {
	Code     string  `json:"code"`
	Type     string  `json:"type"`
	Discount float64 `json:"discount"`
}

// PricingResult is the pricing snapshot computed at checkout
type PricingResult struct {
	Subtotal         float64 `json:"subtotal"`
	FlatDiscount     float64 `json:"flat_discount"`
	PerCycleDiscount float64 `json:"per_cycle_discount"`
	GST              float64 `json:"gst"`
	Total            float64 `json:"total"`
	DiscountApplied  bool    `json:"discount_applied"`
	CouponCode       string  `json:"coupon_code"`
	CouponType       string  `json:"coupon_type"`
}

// ComputeTotals prices a cart. A totalAmount coupon deducts its discount value
// as an absolute amount from the subtotal; a perCycle coupon deducts its value
// as a percentage of each line's unit cost, per unit. Exactly one of the two
// accumulators is nonzero for a given coupon. The discounted subtotal is not
// clamped at zero: a discount larger than the subtotal passes through as a
// negative total.
func ComputeTotals(items []CartItem, terms *CouponTerms) PricingResult {
	var result PricingResult

	for _, item := range items {
		result.Subtotal += item.LineTotal()
	}

	if terms != nil {
		switch terms.Type {
		case models.CouponTypeTotalAmount:
			result.FlatDiscount = terms.Discount
			result.PerCycleDiscount = 0
		case models.CouponTypePerCycle:
			result.FlatDiscount = 0
			for _, item := range items {
				result.PerCycleDiscount += item.UnitCost() * (terms.Discount / 100) * float64(item.Units())
			}
		}
		result.CouponCode = terms.Code
		result.CouponType = terms.Type
	}

	discounted := result.Subtotal - result.FlatDiscount - result.PerCycleDiscount
	result.GST = discounted * GSTRate
	result.Total = discounted + result.GST
	result.DiscountApplied = result.FlatDiscount > 0 || result.PerCycleDiscount > 0

	return result
}
