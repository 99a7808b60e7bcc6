package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// AddToCartRequest represents the request body for adding a cart line
type AddToCartRequest struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	WheelSize      string `json:"wheel_size" binding:"required"`
	BundleQuantity int    `json:"bundle_quantity" binding:"required,gt=0"`
	TyreType       string `json:"tyre_type" binding:"required"`
	BrandType      string `json:"brand_type"`
}

// cartLineView shapes one cart line with its derived amounts
func cartLineView(item utils.CartItem) gin.H {
	return gin.H{
		"product_id":      item.ProductID,
		"brand":           item.Brand,
		"wheel_size":      item.WheelSize,
		"cost_per_unit":   item.CostPerUnit,
		"tyre_type":       item.TyreType,
		"brand_type":      item.BrandType,
		"surcharge":       item.Surcharge,
		"unit_cost":       item.UnitCost(),
		"bundle_size":     item.BundleSize,
		"bundle_quantity": item.BundleQuantity,
		"units":           item.Units(),
		"line_total":      item.LineTotal(),
	}
}

func cartResponse(c *gin.Context, items []utils.CartItem) gin.H {
	var lines []gin.H
	for _, item := range items {
		lines = append(lines, cartLineView(item))
	}
	terms := utils.GetCouponSession(c)
	pricing := utils.ComputeTotals(items, terms)
	return gin.H{
		"items":   lines,
		"coupon":  terms,
		"pricing": pricing,
	}
}

// buildCartItem resolves the catalog data for a requested line and bakes the
// tyre/brand surcharge into it
func buildCartItem(req AddToCartRequest) (*utils.CartItem, *utils.AppError) {
	var product models.Product
	if err := config.DB.Preload("Variants").First(&product, req.ProductID).Error; err != nil {
		return nil, utils.NotFoundError("Product not found", err)
	}

	if !models.ValidWheelSize(req.WheelSize) {
		return nil, utils.BadRequestError(utils.ErrInvalidWheelSize, nil)
	}

	var variant *models.Variant
	for i := range product.Variants {
		if product.Variants[i].WheelSize == req.WheelSize {
			variant = &product.Variants[i]
			break
		}
	}
	if variant == nil {
		return nil, utils.NotFoundError("This size is not listed for the product", nil)
	}
	if !variant.Purchasable() {
		return nil, utils.BadRequestError("This size is not offered for the product", nil)
	}

	if valid, msg := utils.ValidateTyreSelection(req.TyreType, req.BrandType); !valid {
		return nil, utils.BadRequestError(msg, nil)
	}

	tyreType := req.TyreType
	brandType := req.BrandType
	if !product.TyreChargeable {
		// Product is not tyre-chargeable; sell as tubeless with no surcharge
		tyreType = utils.TyreTypeTubeless
		brandType = ""
	}
	if tyreType == utils.TyreTypeTubeless {
		brandType = ""
	}

	surcharge, _ := utils.DeriveLineCost(variant.CostPerUnit, tyreType, brandType)
	return &utils.CartItem{
		ProductID:      product.ID,
		Brand:          product.Brand,
		WheelSize:      variant.WheelSize,
		CostPerUnit:    variant.CostPerUnit,
		TyreType:       tyreType,
		BrandType:      brandType,
		Surcharge:      surcharge,
		BundleSize:     variant.BundleSize,
		BundleQuantity: req.BundleQuantity,
	}, nil
}

// AddToCart adds a line to the session cart, replacing any existing line for
// the same product/size/tyre selection
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	// The cart lives in the session; refuse the write early if the store
	// cannot persist it
	if err := utils.CheckSessionStore(c); err != nil {
		utils.LogError("Session store unavailable: %v", err)
		utils.InternalServerError(c, "Session store unavailable", nil)
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogDebug("Adding product %d size %s to cart", req.ProductID, req.WheelSize)

	item, appErr := buildCartItem(req)
	if appErr != nil {
		utils.LogError("Failed to build cart line: %s", appErr.Message)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	items := utils.GetCartSession(c)
	replaced := false
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].WheelSize == item.WheelSize &&
			items[i].TyreType == item.TyreType && items[i].BrandType == item.BrandType {
			items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, *item)
	}

	if err := utils.SaveCartSession(c, items); err != nil {
		utils.LogError("Failed to save cart session: %v", err)
		utils.InternalServerError(c, "Failed to save cart", nil)
		return
	}

	utils.LogInfo("Cart now has %d lines", len(items))
	utils.Success(c, "Added to cart", cartResponse(c, items))
}

// UpdateCartItem changes the bundle quantity of a cart line
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.LogError("Invalid cart line index: %v", err)
		utils.BadRequest(c, "Invalid cart line index", nil)
		return
	}

	var req struct {
		BundleQuantity int `json:"bundle_quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	items := utils.GetCartSession(c)
	if index < 0 || index >= len(items) {
		utils.LogError("Cart line index out of range: %d", index)
		utils.NotFound(c, "Cart line not found")
		return
	}

	items[index].BundleQuantity = req.BundleQuantity
	if err := utils.SaveCartSession(c, items); err != nil {
		utils.LogError("Failed to save cart session: %v", err)
		utils.InternalServerError(c, "Failed to save cart", nil)
		return
	}

	utils.Success(c, "Cart updated", cartResponse(c, items))
}

// RemoveFromCart drops a line from the session cart
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.LogError("Invalid cart line index: %v", err)
		utils.BadRequest(c, "Invalid cart line index", nil)
		return
	}

	items := utils.GetCartSession(c)
	if index < 0 || index >= len(items) {
		utils.LogError("Cart line index out of range: %d", index)
		utils.NotFound(c, "Cart line not found")
		return
	}

	items = append(items[:index], items[index+1:]...)
	if err := utils.SaveCartSession(c, items); err != nil {
		utils.LogError("Failed to save cart session: %v", err)
		utils.InternalServerError(c, "Failed to save cart", nil)
		return
	}

	utils.LogInfo("Cart now has %d lines", len(items))
	utils.Success(c, "Removed from cart", cartResponse(c, items))
}

// GetCart returns the session cart with computed totals
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	items := utils.GetCartSession(c)
	utils.Success(c, "Cart retrieved successfully", cartResponse(c, items))
}

// ClearCart drops the session cart and any applied coupon
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")
	if err := utils.ClearCartSession(c); err != nil {
		utils.LogError("Failed to clear cart session: %v", err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}
	utils.Success(c, "Cart cleared", cartResponse(c, nil))
}

// QuoteLine derives the cost of a prospective cart line without touching the
// cart, for live price display while the customer picks options
func QuoteLine(c *gin.Context) {
	utils.LogInfo("QuoteLine called")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item, appErr := buildCartItem(req)
	if appErr != nil {
		utils.LogError("Failed to quote line: %s", appErr.Message)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	utils.Success(c, "Line quoted", cartLineView(*item))
}
