package controllers

import (
	"strconv"
	"strings"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// CategoryRequest represents the category creation/update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateCategory handles category creation
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received category creation request - Name: %s", req.Name)

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.LogError("Invalid category name %q: %s", req.Name, msg)
		utils.ValidationError(c, "Invalid category name", utils.FieldValidationErrors{{Field: "name", Message: msg}})
		return
	}

	// Derive a slug from the name when none is provided
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if valid, msg := utils.ValidateSlug(slug); !valid {
		utils.LogError("Invalid slug %q: %s", slug, msg)
		utils.ValidationError(c, "Invalid slug", utils.FieldValidationErrors{{Field: "slug", Message: msg}})
		return
	}

	// Slug uniqueness is enforced before creation
	var existingCategory models.Category
	if err := config.DB.Where("slug = ?", slug).First(&existingCategory).Error; err == nil {
		utils.LogError("Category with slug %s already exists", slug)
		utils.Conflict(c, "A category with this slug already exists", nil)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: utils.SanitizeString(req.Description),
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created successfully: %s (%s)", category.Name, category.Slug)
	utils.Created(c, "Category created successfully", gin.H{
		"category": gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
		},
	})
}

// GetCategories lists categories with pagination
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	pagination := utils.NewPagination(c)
	var categories []models.Category
	var total int64

	query := config.DB.Model(&models.Category{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR slug ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Order("name asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d categories", len(categories))
	utils.SendPaginatedResponse(c, categories, pagination)
}

// UpdateCategory handles category updates
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}
	utils.LogDebug("Processing category ID: %d", id)

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if valid, msg := utils.ValidateName(req.Name); !valid {
		utils.ValidationError(c, "Invalid category name", utils.FieldValidationErrors{{Field: "name", Message: msg}})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = category.Slug
	}
	if valid, msg := utils.ValidateSlug(slug); !valid {
		utils.ValidationError(c, "Invalid slug", utils.FieldValidationErrors{{Field: "slug", Message: msg}})
		return
	}

	// Reject a slug already taken by another category
	var conflict models.Category
	if err := config.DB.Where("slug = ? AND id <> ?", slug, category.ID).First(&conflict).Error; err == nil {
		utils.LogError("Slug %s already taken by category %d", slug, conflict.ID)
		utils.Conflict(c, "A category with this slug already exists", nil)
		return
	}

	category.Name = req.Name
	category.Slug = slug
	category.Description = utils.SanitizeString(req.Description)

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category: %v", err)
		utils.InternalServerError(c, "Failed to update category", err.Error())
		return
	}

	utils.LogInfo("Category updated successfully: %s", category.Name)
	utils.Success(c, "Category updated successfully", gin.H{
		"category": gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
		},
	})
}

// DeleteCategory handles category deletion
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	// Refuse to delete a category that still has products
	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count products for category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}
	if productCount > 0 {
		utils.LogError("Category %d still has %d products", category.ID, productCount)
		utils.Conflict(c, "Cannot delete a category that still has products", gin.H{"product_count": productCount})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category: %v", err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Category deleted successfully: %s", category.Name)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
