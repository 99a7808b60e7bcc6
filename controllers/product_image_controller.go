package controllers

import (
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
)

// UploadProductImage saves an uploaded image file and appends it to the
// product's image list
func UploadProductImage(c *gin.Context) {
	utils.LogInfo("UploadProductImage called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.LogError("No image file in request: %v", err)
		utils.BadRequest(c, "Image file is required", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads")
	if err != nil {
		utils.LogError("Failed to save uploaded image: %v", err)
		utils.BadRequest(c, "Failed to save image", err.Error())
		return
	}
	utils.LogDebug("Saved product image to %s", path)

	image := models.ProductImage{
		ProductID: product.ID,
		URL:       path,
		Position:  len(product.Images),
	}
	if err := config.DB.Create(&image).Error; err != nil {
		utils.LogError("Failed to record product image: %v", err)
		utils.InternalServerError(c, "Failed to record product image", err.Error())
		return
	}

	utils.LogInfo("Image uploaded for product %d: %s", product.ID, path)
	utils.Created(c, utils.MsgUploadSuccess, gin.H{"image": image})
}

// DeleteProductImage removes one image from a product
func DeleteProductImage(c *gin.Context) {
	utils.LogInfo("DeleteProductImage called")

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}
	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid image ID format: %v", err)
		utils.BadRequest(c, "Invalid image ID format", "Image ID must be a valid number")
		return
	}

	var image models.ProductImage
	if err := config.DB.Where("id = ? AND product_id = ?", imageID, productID).First(&image).Error; err != nil {
		utils.LogError("Product image not found: %v", err)
		utils.NotFound(c, "Product image not found")
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		utils.LogError("Failed to delete product image: %v", err)
		utils.InternalServerError(c, "Failed to delete product image", err.Error())
		return
	}

	// Best-effort removal of the file itself; locally stored uploads only
	if err := utils.DeleteFile(image.URL); err != nil {
		utils.LogDebug("Could not remove image file %s: %v", image.URL, err)
	}

	utils.LogInfo("Image %d deleted from product %d", image.ID, image.ProductID)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
