package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// CustomerRequest represents the customer creation/update request
type CustomerRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email"`
	LeadTag     string `json:"lead_tag"`
	Description string `json:"description"`
}

// CreateCustomer handles customer creation
func CreateCustomer(c *gin.Context) {
	utils.LogInfo("CreateCustomer called")

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.LogError("Invalid customer name %q: %s", req.Name, msg)
		utils.ValidationError(c, "Invalid customer name", utils.FieldValidationErrors{{Field: "name", Message: msg}})
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		LeadTag:     req.LeadTag,
		Description: utils.SanitizeString(req.Description),
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.LogError("Failed to create customer: %v", err)
		utils.InternalServerError(c, "Failed to create customer", err.Error())
		return
	}

	utils.LogInfo("Customer created successfully: %s, ID: %d", customer.Name, customer.ID)
	utils.Created(c, "Customer created successfully", gin.H{"customer": customer})
}

// GetCustomers lists customers with pagination
func GetCustomers(c *gin.Context) {
	utils.LogInfo("GetCustomers called")

	pagination := utils.NewPagination(c)
	var customers []models.Customer
	var total int64

	query := config.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR lead_tag ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count customers: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Order("name asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customers: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d customers", len(customers))
	utils.SendPaginatedResponse(c, customers, pagination)
}

// UpdateCustomer handles customer updates
func UpdateCustomer(c *gin.Context) {
	utils.LogInfo("UpdateCustomer called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid customer ID format: %v", err)
		utils.BadRequest(c, "Invalid customer ID format", "Customer ID must be a valid number")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.LogError("Customer not found: %v", err)
		utils.NotFound(c, "Customer not found")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.ValidationError(c, "Invalid customer name", utils.FieldValidationErrors{{Field: "name", Message: msg}})
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.LeadTag = req.LeadTag
	customer.Description = utils.SanitizeString(req.Description)

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.LogError("Failed to update customer: %v", err)
		utils.InternalServerError(c, "Failed to update customer", err.Error())
		return
	}

	utils.LogInfo("Customer updated successfully: %s", customer.Name)
	utils.Success(c, "Customer updated successfully", gin.H{"customer": customer})
}

// UploadCustomerPhoto saves an uploaded photo and attaches it to the customer
func UploadCustomerPhoto(c *gin.Context) {
	utils.LogInfo("UploadCustomerPhoto called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid customer ID format: %v", err)
		utils.BadRequest(c, "Invalid customer ID format", "Customer ID must be a valid number")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.LogError("Customer not found: %v", err)
		utils.NotFound(c, "Customer not found")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		utils.LogError("No photo file in request: %v", err)
		utils.BadRequest(c, "Photo file is required", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads")
	if err != nil {
		utils.LogError("Failed to save uploaded photo: %v", err)
		utils.BadRequest(c, "Failed to save photo", err.Error())
		return
	}

	customer.Photo = path
	if err := config.DB.Save(&customer).Error; err != nil {
		utils.LogError("Failed to record customer photo: %v", err)
		utils.InternalServerError(c, "Failed to record customer photo", err.Error())
		return
	}

	utils.LogInfo("Photo uploaded for customer %d: %s", customer.ID, path)
	utils.Success(c, utils.MsgUploadSuccess, gin.H{"customer": customer})
}

// DeleteCustomer deletes a customer and, in the same transaction, every order
// referencing them
func DeleteCustomer(c *gin.Context) {
	utils.LogInfo("DeleteCustomer called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid customer ID format: %v", err)
		utils.BadRequest(c, "Invalid customer ID format", "Customer ID must be a valid number")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.LogError("Customer not found: %v", err)
		utils.NotFound(c, "Customer not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	// Cascade: orders and their line items go with the customer
	var orders []models.Order
	if err := tx.Where("customer_id = ?", customer.ID).Find(&orders).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to fetch orders for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to delete customer", err.Error())
		return
	}
	for _, order := range orders {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to delete items of order %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to delete customer", err.Error())
			return
		}
	}
	if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete orders for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to delete customer", err.Error())
		return
	}
	if err := tx.Delete(&customer).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete customer: %v", err)
		utils.InternalServerError(c, "Failed to delete customer", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Customer %d deleted with %d orders", customer.ID, len(orders))
	utils.Success(c, utils.MsgDeleteSuccess, gin.H{"deleted_orders": len(orders)})
}
