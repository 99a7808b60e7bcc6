package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// AdminListOrders lists orders with pagination, optionally filtered by status
// or customer
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)
	var orders []models.Order
	var total int64

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			utils.LogError("Invalid status filter: %s", status)
			utils.BadRequest(c, "Invalid status", gin.H{"valid_statuses": models.OrderStatuses})
			return
		}
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Preload("Customer").Preload("OrderItems").
		Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d orders", len(orders))
	utils.SendPaginatedResponse(c, orders, pagination)
}

// GetOrderDetail returns one order with its snapshotted lines
func GetOrderDetail(c *gin.Context) {
	utils.LogInfo("GetOrderDetail called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("Customer").Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

// AdminUpdateOrderStatus overwrites an order's status. Any known status can
// replace any other; there is no transition validation.
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}
	utils.LogDebug("Processing order ID: %d", orderID)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.LogError("Invalid status in request: %v", err)
		utils.BadRequest(c, "Status is required", nil)
		return
	}
	utils.LogDebug("Requested status update to: %s", req.Status)

	if !models.ValidOrderStatus(req.Status) {
		utils.LogError("Invalid status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{
			"valid_statuses": models.OrderStatuses,
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}
	utils.LogDebug("Found order with current status: %s", order.Status)

	order.Status = req.Status
	if err := config.DB.Save(&order).Error; err != nil {
		utils.LogError("Failed to update order status: %v", err)
		utils.InternalServerError(c, "Failed to update order status", err.Error())
		return
	}

	utils.LogInfo("Order %d status updated to %s", order.ID, order.Status)
	utils.Success(c, "Order status updated successfully", gin.H{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// AdminDeleteOrder removes an order and its line items
func AdminDeleteOrder(c *gin.Context) {
	utils.LogInfo("AdminDeleteOrder called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete order items for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to delete order", err.Error())
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete order: %v", err)
		utils.InternalServerError(c, "Failed to delete order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Order %d deleted", order.ID)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
