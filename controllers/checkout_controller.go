package controllers

import (
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// CheckoutCustomer is an inline customer payload for first-time buyers
type CheckoutCustomer struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email"`
	LeadTag     string `json:"lead_tag"`
	Description string `json:"description"`
}

// PlaceOrderRequest represents the checkout request. Either an existing
// customer ID or an inline customer must be supplied.
type PlaceOrderRequest struct {
	CustomerID uint              `json:"customer_id"`
	Customer   *CheckoutCustomer `json:"customer"`
	Remarks    string            `json:"remarks"`
}

// PlaceOrder turns the session cart into a persisted order. The whole write
// runs in one transaction: a customer that cannot be resolved or a product
// that has vanished from the catalog aborts with no partial order, and the
// session cart survives so the caller can correct and retry.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.CustomerID == 0 && req.Customer == nil {
		utils.LogError("Checkout without a customer reference")
		utils.BadRequest(c, "A customer ID or a new customer is required", nil)
		return
	}

	items := utils.GetCartSession(c)
	if len(items) == 0 {
		utils.LogError("Checkout with an empty cart")
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}
	utils.LogDebug("Checking out %d cart lines", len(items))

	// Re-validate any applied coupon at checkout time; an expired or
	// deactivated coupon aborts rather than silently repricing the order
	terms := utils.GetCouponSession(c)
	if terms != nil {
		fresh, err := lookupCouponTerms(terms.Code, time.Now())
		if err != nil {
			respondCouponError(c, terms.Code, err)
			return
		}
		terms = fresh
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	// Resolve the customer: existing reference or a newly created one
	var customer models.Customer
	if req.CustomerID != 0 {
		if err := tx.First(&customer, req.CustomerID).Error; err != nil {
			tx.Rollback()
			utils.LogError("Customer not found: %d", req.CustomerID)
			utils.NotFound(c, "Customer not found")
			return
		}
	} else {
		if valid, msg := utils.ValidateName(req.Customer.Name); !valid {
			tx.Rollback()
			utils.ValidationError(c, "Invalid customer name", utils.FieldValidationErrors{{Field: "name", Message: msg}})
			return
		}
		customer = models.Customer{
			Name:        req.Customer.Name,
			Email:       req.Customer.Email,
			LeadTag:     req.Customer.LeadTag,
			Description: utils.SanitizeString(req.Customer.Description),
		}
		if err := tx.Create(&customer).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create customer: %v", err)
			utils.InternalServerError(c, "Failed to create customer", err.Error())
			return
		}
		utils.LogDebug("Created customer %d during checkout", customer.ID)
	}

	// Every referenced product and size must still exist in the catalog
	for _, item := range items {
		var product models.Product
		if err := tx.Preload("Variants").First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			utils.LogError("Product %d vanished from catalog", item.ProductID)
			utils.NotFound(c, "A product in the cart is no longer available")
			return
		}
		found := false
		for _, v := range product.Variants {
			if v.WheelSize == item.WheelSize && v.Purchasable() {
				found = true
				break
			}
		}
		if !found {
			tx.Rollback()
			utils.LogError("Variant %s of product %d no longer offered", item.WheelSize, item.ProductID)
			utils.NotFound(c, "A size in the cart is no longer available")
			return
		}
	}

	pricing := utils.ComputeTotals(items, terms)

	order := models.Order{
		CustomerID:       customer.ID,
		Subtotal:         pricing.Subtotal,
		FlatDiscount:     pricing.FlatDiscount,
		PerCycleDiscount: pricing.PerCycleDiscount,
		GST:              pricing.GST,
		Total:            pricing.Total,
		DiscountApplied:  pricing.DiscountApplied,
		CouponCode:       pricing.CouponCode,
		CouponType:       pricing.CouponType,
		Remarks:          utils.SanitizeString(req.Remarks),
		Status:           models.OrderStatusProcessing,
	}
	for _, item := range items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID:      item.ProductID,
			Brand:          item.Brand,
			WheelSize:      item.WheelSize,
			CostPerUnit:    item.CostPerUnit,
			TyreType:       item.TyreType,
			BrandType:      item.BrandType,
			Surcharge:      item.Surcharge,
			BundleSize:     item.BundleSize,
			BundleQuantity: item.BundleQuantity,
			Units:          item.Units(),
			LineTotal:      item.LineTotal(),
		})
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to place order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}
	utils.LogInfo("Order %d placed for customer %d, total %.2f", order.ID, customer.ID, order.Total)

	// The draft is only cleared once the order is safely persisted
	if err := utils.ClearCartSession(c); err != nil {
		utils.LogError("Failed to clear cart session after order %d: %v", order.ID, err)
	}

	// Best-effort confirmation email with the invoice attached
	if customer.Email != "" {
		order.Customer = customer
		pdf, err := generateInvoicePDF(&order)
		if err != nil {
			utils.LogError("Failed to render invoice for email, order %d: %v", order.ID, err)
			pdf = nil
		}
		if err := utils.SendOrderConfirmation(customer.Email, customer.Name, order.ID, order.Total, pdf); err != nil {
			utils.LogError("Failed to send confirmation for order %d: %v", order.ID, err)
		} else {
			utils.LogInfo("Confirmation email sent for order %d", order.ID)
		}
	}

	utils.Created(c, "Order placed successfully", gin.H{
		"order_id": order.ID,
		"status":   order.Status,
		"customer": gin.H{"id": customer.ID, "name": customer.Name},
		"pricing":  pricing,
	})
}
