package models

import (
	"time"

	"gorm.io/gorm"
)

// Wheel diameters a cycle can be listed under, in inches
var WheelSizes = []string{"12", "16", "20", "24", "26", "27.5", "29"}

// ValidWheelSize reports whether size is one of the supported wheel diameters
func ValidWheelSize(size string) bool {
	for _, s := range WheelSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Product represents a cycle model in the catalog
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Brand          string         `json:"brand" gorm:"not null"`
	Subtitle       string         `json:"subtitle"`
	CategoryID     uint           `json:"category_id"`
	Category       Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	TyreChargeable bool           `json:"tyre_chargeable" gorm:"default:false"`
	Images         []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	Variants       []Variant      `json:"variants" gorm:"foreignKey:ProductID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductImage holds one image URL of a product, ordered by Position
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `json:"product_id"`
	URL       string `json:"url" gorm:"not null"`
	Position  int    `json:"position" gorm:"default:0"`
}

// Variant is a purchasable size/price combination of a product.
// A cost of 0 means the size is not offered.
type Variant struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductID   uint    `json:"product_id"`
	WheelSize   string  `json:"wheel_size" gorm:"not null"`
	CostPerUnit float64 `json:"cost_per_unit" gorm:"default:0"`
	BundleSize  int     `json:"bundle_size" gorm:"default:1"`
}

// Purchasable reports whether the variant is offered for sale
func (v Variant) Purchasable() bool {
	return v.CostPerUnit > 0
}

// PurchasableVariants filters out sizes that are not offered
func (p Product) PurchasableVariants() []Variant {
	var out []Variant
	for _, v := range p.Variants {
		if v.Purchasable() {
			out = append(out, v)
		}
	}
	return out
}
