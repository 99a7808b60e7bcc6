package routes

import (
	"github.com/arundas-dev/CycleKart/controllers"
	"github.com/arundas-dev/CycleKart/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Category management
			admin.POST("/categories", controllers.CreateCategory)
			admin.GET("/categories", controllers.GetCategories)
			admin.PUT("/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			// Product management
			admin.POST("/products", controllers.CreateProduct)
			admin.GET("/products", controllers.GetProducts)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)
			admin.POST("/products/:id/images", controllers.UploadProductImage)
			admin.DELETE("/products/:id/images/:imageId", controllers.DeleteProductImage)

			// Coupon management
			admin.POST("/coupons", controllers.CreateCoupon)
			admin.GET("/coupons", controllers.GetCoupons)
			admin.PUT("/coupons/:id", controllers.UpdateCoupon)
			admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

			// Customer management
			admin.POST("/customers", controllers.CreateCustomer)
			admin.GET("/customers", controllers.GetCustomers)
			admin.PUT("/customers/:id", controllers.UpdateCustomer)
			admin.POST("/customers/:id/photo", controllers.UploadCustomerPhoto)
			admin.DELETE("/customers/:id", controllers.DeleteCustomer)

			// Order management
			admin.GET("/orders", controllers.AdminListOrders)
			admin.GET("/orders/export", controllers.DownloadOrdersExcel)
			admin.GET("/orders/:id", controllers.GetOrderDetail)
			admin.GET("/orders/:id/invoice", controllers.DownloadInvoice)
			admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus)
			admin.DELETE("/orders/:id", controllers.AdminDeleteOrder)
		}
	}
}
