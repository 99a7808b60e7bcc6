package controllers

import (
	"strconv"
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// GetCoupons lists all coupons for the admin with pagination
func GetCoupons(c *gin.Context) {
	utils.LogInfo("GetCoupons called")

	pagination := utils.NewPagination(c)
	var coupons []models.Coupon
	var total int64

	query := config.DB.Model(&models.Coupon{})
	if search := c.Query("search"); search != "" {
		query = query.Where("code ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}

	now := time.Now()
	var out []gin.H
	for _, coupon := range coupons {
		out = append(out, gin.H{
			"id":         coupon.ID,
			"code":       coupon.Code,
			"type":       coupon.Type,
			"discount":   coupon.Discount,
			"active":     coupon.Active,
			"is_expired": coupon.Expired(now),
			"expires_at": coupon.ExpiresAt,
			"created_at": coupon.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.LogInfo("Retrieved %d coupons", len(out))
	utils.SendPaginatedResponse(c, out, pagination)
}

// DeleteCoupon removes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

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

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon: %v", err)
		utils.InternalServerError(c, "Failed to delete coupon", err.Error())
		return
	}

	utils.LogInfo("Successfully deleted coupon: %s", coupon.Code)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
