package controllers

import (
	"strconv"
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// UpdateCouponRequest represents the request body for updating a coupon. Only
// the admin-editable fields are accepted; code and type are fixed at creation.
type UpdateCouponRequest struct {
	Discount  *float64   `json:"discount"`
	Active    *bool      `json:"active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// UpdateCoupon updates a coupon's discount, active flag or expiry
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid coupon ID format: %v", err)
		utils.BadRequest(c, "Invalid coupon ID format", "Coupon ID must be a valid number")
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.LogError("Coupon not found: %v", err)
		utils.NotFound(c, "Coupon not found")
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Discount != nil {
		if err := utils.ValidateCouponValue(coupon.Type, *req.Discount); err != nil {
			utils.LogError("Invalid coupon value for code %s: %v", coupon.Code, err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		coupon.Discount = *req.Discount
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.LogError("Failed to update coupon: %v", err)
		utils.InternalServerError(c, "Failed to update coupon", err.Error())
		return
	}

	utils.LogInfo("Successfully updated coupon: %s", coupon.Code)
	utils.Success(c, "Coupon updated successfully", gin.H{
		"id":         coupon.ID,
		"code":       coupon.Code,
		"type":       coupon.Type,
		"discount":   coupon.Discount,
		"active":     coupon.Active,
		"is_expired": coupon.Expired(time.Now()),
		"expires_at": coupon.ExpiresAt,
	})
}
