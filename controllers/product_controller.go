package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// VariantRequest is one size/price row of a product request
type VariantRequest struct {
	WheelSize   string  `json:"wheel_size" binding:"required"`
	CostPerUnit float64 `json:"cost_per_unit"`
	BundleSize  int     `json:"bundle_size" binding:"required,gt=0"`
}

// ProductRequest represents the product creation/update request
type ProductRequest struct {
	Brand          string           `json:"brand" binding:"required,min=2,max=100"`
	Subtitle       string           `json:"subtitle"`
	CategoryID     uint             `json:"category_id" binding:"required"`
	TyreChargeable bool             `json:"tyre_chargeable"`
	Images         []string         `json:"images"`
	Variants       []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

func validateProductRequest(req *ProductRequest) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors
	if valid, msg := utils.ValidateName(req.Brand); !valid {
		errs = append(errs, utils.FieldValidationError{Field: "brand", Message: msg})
	}
	seen := map[string]bool{}
	for _, v := range req.Variants {
		if !models.ValidWheelSize(v.WheelSize) {
			errs = append(errs, utils.FieldValidationError{Field: "variants", Message: utils.ErrInvalidWheelSize + ": " + v.WheelSize})
		}
		if v.CostPerUnit < 0 {
			errs = append(errs, utils.FieldValidationError{Field: "variants", Message: utils.ErrInvalidCost})
		}
		if seen[v.WheelSize] {
			errs = append(errs, utils.FieldValidationError{Field: "variants", Message: "Duplicate wheel size: " + v.WheelSize})
		}
		seen[v.WheelSize] = true
	}
	return errs
}

// CreateProduct handles product creation with its variants and image URLs
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received product creation request - Brand: %s", req.Brand)

	if errs := validateProductRequest(&req); len(errs) > 0 {
		utils.LogError("Product validation failed: %v", errs)
		utils.ValidationError(c, "Invalid product", errs)
		return
	}

	// The referenced category must exist
	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.LogError("Category not found: %d", req.CategoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	product := models.Product{
		Brand:          req.Brand,
		Subtitle:       utils.SanitizeString(req.Subtitle),
		CategoryID:     category.ID,
		TyreChargeable: req.TyreChargeable,
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, models.Variant{
			WheelSize:   v.WheelSize,
			CostPerUnit: v.CostPerUnit,
			BundleSize:  v.BundleSize,
		})
	}
	for i, url := range req.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
	}

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Product created successfully: %s, ID: %d", product.Brand, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// GetProducts lists products for the admin with pagination
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	pagination := utils.NewPagination(c)
	var products []models.Product
	var total int64

	query := config.DB.Model(&models.Product{})
	if search := c.Query("search"); search != "" {
		query = query.Where("brand ILIKE ? OR subtitle ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Preload("Category").Preload("Variants").Preload("Images").
		Order("created_at desc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d products", len(products))
	utils.SendPaginatedResponse(c, products, pagination)
}

// UpdateProduct handles product updates. Variants are replaced wholesale so
// sizes can be added, repriced or withdrawn (cost 0) in one request.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Variants").First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := validateProductRequest(&req); len(errs) > 0 {
		utils.LogError("Product validation failed: %v", errs)
		utils.ValidationError(c, "Invalid product", errs)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.LogError("Category not found: %d", req.CategoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	product.Brand = req.Brand
	product.Subtitle = utils.SanitizeString(req.Subtitle)
	product.CategoryID = category.ID
	product.TyreChargeable = req.TyreChargeable

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear variants for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}
	for _, v := range req.Variants {
		variant := models.Variant{
			ProductID:   product.ID,
			WheelSize:   v.WheelSize,
			CostPerUnit: v.CostPerUnit,
			BundleSize:  v.BundleSize,
		}
		if err := tx.Create(&variant).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create variant for product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to update product", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	// Reload with associations for the response
	if err := config.DB.Preload("Category").Preload("Variants").Preload("Images").First(&product, product.ID).Error; err != nil {
		utils.LogError("Failed to reload product %d: %v", product.ID, err)
	}

	utils.LogInfo("Product updated successfully: %s, ID: %d", product.Brand, product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct handles product deletion
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete variants for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete images for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}
	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete product: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Product deleted successfully: ID %d", product.ID)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
