package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon types
const (
	CouponTypePerCycle    = "perCycle"    // percentage applied per unit
	CouponTypeTotalAmount = "totalAmount" // absolute amount off the subtotal
)

// ValidCouponType reports whether t is a known coupon type
func ValidCouponType(t string) bool {
	return t == CouponTypePerCycle || t == CouponTypeTotalAmount
}

type Coupon struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Code      string         `gorm:"uniqueIndex:idx_coupons_code" json:"code"`
	Type      string         `json:"type"` // "perCycle" or "totalAmount"
	Discount  float64        `json:"discount"`
	Active    bool           `json:"active"`
	ExpiresAt *time.Time     `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Expired reports whether the coupon has an expiry in the past relative to now
func (cp Coupon) Expired(now time.Time) bool {
	return cp.ExpiresAt != nil && now.After(*cp.ExpiresAt)
}
