package controllers

import (
	"strings"
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// CreateCouponRequest represents the request body for creating a new coupon
type CreateCouponRequest struct {
	Code      string     `json:"code" binding:"required"`
	Type      string     `json:"type" binding:"required,oneof=perCycle totalAmount"`
	Discount  float64    `json:"discount" binding:"required,gt=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// CreateCoupon creates a new coupon
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogInfo("Processing coupon creation with code: %s", req.Code)

	// The discount field carries different units per type; validate at
	// creation time so a percent never sneaks into a totalAmount coupon
	if err := utils.ValidateCouponValue(req.Type, req.Discount); err != nil {
		utils.LogError("Invalid coupon value for code %s: %v", req.Code, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	// Codes are stored upper-cased and matched case-insensitively
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		utils.LogError("Invalid expiry date for coupon code %s: date is in the past", req.Code)
		utils.BadRequest(c, "Expiry date must be in the future", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	// Check if coupon code already exists (case-insensitive)
	var existingCoupon models.Coupon
	if err := tx.Where("UPPER(code) = ?", req.Code).First(&existingCoupon).Error; err == nil {
		tx.Rollback()
		utils.LogError("Coupon code already exists: %s", req.Code)
		utils.Conflict(c, "Coupon code already exists", nil)
		return
	}

	coupon := models.Coupon{
		Code:      req.Code,
		Type:      req.Type,
		Discount:  req.Discount,
		ExpiresAt: req.ExpiresAt,
		Active:    true,
	}

	if err := tx.Create(&coupon).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully created coupon with code: %s, ID: %d", coupon.Code, coupon.ID)
	utils.Created(c, "Coupon created successfully", gin.H{
		"id":         coupon.ID,
		"code":       coupon.Code,
		"type":       coupon.Type,
		"discount":   coupon.Discount,
		"active":     coupon.Active,
		"is_expired": false,
		"expires_at": coupon.ExpiresAt,
		"created_at": coupon.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}
