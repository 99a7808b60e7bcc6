package controllers

import (
	"strings"
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// lookupCouponTerms resolves a code into validated discount terms. Lookup is
// case-insensitive against the upper-cased stored codes; validation failures
// come back as distinct error kinds so the caller can report "expired" vs
// "invalid code" accurately, and a storage failure is never reported as an
// unknown code.
func lookupCouponTerms(code string, now time.Time) (*utils.CouponTerms, error) {
	var coupon models.Coupon
	err := config.DB.Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).First(&coupon).Error
	if err != nil {
		return utils.TermsFromLookup(nil, err, now)
	}
	return utils.TermsFromLookup(&coupon, nil, now)
}

func respondCouponError(c *gin.Context, code string, err error) {
	if appErr := utils.GetAppError(err); appErr != nil {
		utils.LogError("Coupon %s rejected: %s", code, appErr.Message)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	utils.LogError("Coupon validation failed for %s: %v", code, err)
	utils.InternalServerError(c, "Failed to validate coupon", nil)
}

// ApplyCoupon validates a coupon code and attaches its terms to the session
// cart. Validation does not consume the coupon; coupons are unlimited-use.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogInfo("Attempting to apply coupon code: %s", req.Code)

	terms, err := lookupCouponTerms(req.Code, time.Now())
	if err != nil {
		respondCouponError(c, req.Code, err)
		return
	}

	if err := utils.SaveCouponSession(c, *terms); err != nil {
		utils.LogError("Failed to save coupon to session: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	items := utils.GetCartSession(c)
	pricing := utils.ComputeTotals(items, terms)

	utils.LogInfo("Successfully applied coupon code: %s, total: %.2f", terms.Code, pricing.Total)
	utils.Success(c, "Coupon applied successfully", gin.H{
		"coupon":  terms,
		"pricing": pricing,
	})
}

// RemoveCoupon detaches any applied coupon from the session cart
func RemoveCoupon(c *gin.Context) {
	utils.LogInfo("RemoveCoupon called")

	if err := utils.ClearCouponSession(c); err != nil {
		utils.LogError("Failed to clear coupon from session: %v", err)
		utils.InternalServerError(c, "Failed to remove coupon", nil)
		return
	}

	items := utils.GetCartSession(c)
	pricing := utils.ComputeTotals(items, nil)

	utils.LogInfo("Coupon removed, total back to %.2f", pricing.Total)
	utils.Success(c, "Coupon removed successfully", gin.H{
		"pricing": pricing,
	})
}
