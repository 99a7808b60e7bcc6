package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// storeProductView shapes a product for the storefront: only purchasable
// variants are shown, sizes with cost 0 are filtered out
func storeProductView(product models.Product) gin.H {
	var variants []gin.H
	for _, v := range product.PurchasableVariants() {
		variants = append(variants, gin.H{
			"id":            v.ID,
			"wheel_size":    v.WheelSize,
			"cost_per_unit": v.CostPerUnit,
			"bundle_size":   v.BundleSize,
		})
	}
	var images []string
	for _, img := range product.Images {
		images = append(images, img.URL)
	}
	return gin.H{
		"id":              product.ID,
		"brand":           product.Brand,
		"subtitle":        product.Subtitle,
		"category":        product.Category.Name,
		"category_slug":   product.Category.Slug,
		"tyre_chargeable": product.TyreChargeable,
		"images":          images,
		"variants":        variants,
	}
}

// ListStoreCategories lists all categories for the storefront
func ListStoreCategories(c *gin.Context) {
	utils.LogInfo("ListStoreCategories called")

	var categories []models.Category
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	var out []gin.H
	for _, cat := range categories {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name, "slug": cat.Slug, "description": cat.Description})
	}
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": out})
}

// ListProductsByCategory lists a category's products by its slug
func ListProductsByCategory(c *gin.Context) {
	utils.LogInfo("ListProductsByCategory called")

	slug := c.Param("slug")
	var category models.Category
	if err := config.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		utils.LogError("Category not found for slug: %s", slug)
		utils.NotFound(c, "Category not found")
		return
	}

	pagination := utils.NewPagination(c)
	var products []models.Product
	var total int64

	query := config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID)
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products for category %s: %v", slug, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	if err := query.Preload("Category").Preload("Variants").Preload("Images").
		Order("brand asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for category %s: %v", slug, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	var views []gin.H
	for _, p := range products {
		views = append(views, storeProductView(p))
	}
	utils.LogInfo("Retrieved %d products for category %s", len(views), slug)
	utils.SendPaginatedResponse(c, views, pagination)
}

// PresentationProducts serves the kiosk browsing mode: every product with at
// least one purchasable variant, grouped by category
func PresentationProducts(c *gin.Context) {
	utils.LogInfo("PresentationProducts called")

	var products []models.Product
	if err := config.DB.Preload("Category").Preload("Variants").Preload("Images").
		Order("category_id asc, brand asc").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for presentation: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	grouped := map[string][]gin.H{}
	for _, p := range products {
		if len(p.PurchasableVariants()) == 0 {
			continue
		}
		grouped[p.Category.Slug] = append(grouped[p.Category.Slug], storeProductView(p))
	}

	utils.LogInfo("Prepared presentation listing with %d categories", len(grouped))
	utils.Success(c, "Products retrieved successfully", gin.H{"categories": grouped})
}

// GetProductDetail returns one product for the storefront
func GetProductDetail(c *gin.Context) {
	utils.LogInfo("GetProductDetail called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").Preload("Variants").Preload("Images").First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": storeProductView(product)})
}
