package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusProcessing = "processing"
	OrderStatusDispatched = "dispatched"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

// OrderStatuses lists every status an order can carry
var OrderStatuses = []string{
	OrderStatusProcessing,
	OrderStatusDispatched,
	OrderStatusCompleted,
	OrderStatusCanceled,
}

// ValidOrderStatus reports whether s is one of the known order statuses
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

type Order struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	CustomerID       uint        `json:"customer_id"`
	Customer         Customer    `json:"customer" gorm:"foreignKey:CustomerID"`
	Subtotal         float64     `json:"subtotal"`
	FlatDiscount     float64     `json:"flat_discount"`
	PerCycleDiscount float64     `json:"per_cycle_discount"`
	GST              float64     `json:"gst"`
	Total            float64     `json:"total"`
	DiscountApplied  bool        `json:"discount_applied"`
	CouponCode       string      `json:"coupon_code"`
	CouponType       string      `json:"coupon_type"`
	Remarks          string      `json:"remarks"`
	Status           string      `json:"status" gorm:"default:'processing'"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	OrderItems       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is a line item snapshotted at order time. Product data is copied
// here so later catalog edits do not change historical orders.
type OrderItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderID        uint    `json:"order_id"`
	ProductID      uint    `json:"product_id"`
	Brand          string  `json:"brand"`
	WheelSize      string  `json:"wheel_size"`
	CostPerUnit    float64 `json:"cost_per_unit"`
	TyreType       string  `json:"tyre_type"`
	BrandType      string  `json:"brand_type"`
	Surcharge      float64 `json:"surcharge"`
	BundleSize     int     `json:"bundle_size"`
	BundleQuantity int     `json:"bundle_quantity"`
	Units          int     `json:"units"`
	LineTotal      float64 `json:"line_total"`
}
