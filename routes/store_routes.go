package routes

import (
	"github.com/arundas-dev/CycleKart/controllers"
	"github.com/gin-gonic/gin"
)

// initStoreRoutes initializes the storefront routes
func initStoreRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	{
		// Catalog browsing
		store.GET("/categories", controllers.ListStoreCategories)
		store.GET("/categories/:slug/products", controllers.ListProductsByCategory)
		store.GET("/products/:id", controllers.GetProductDetail)
		store.GET("/presentation", controllers.PresentationProducts)

		// Session cart
		store.GET("/cart", controllers.GetCart)
		store.POST("/cart", controllers.AddToCart)
		store.POST("/cart/quote", controllers.QuoteLine)
		store.PATCH("/cart/:index", controllers.UpdateCartItem)
		store.DELETE("/cart/:index", controllers.RemoveFromCart)
		store.DELETE("/cart", controllers.ClearCart)

		// Coupons
		store.POST("/coupon/apply", controllers.ApplyCoupon)
		store.POST("/coupon/remove", controllers.RemoveCoupon)

		// Checkout
		store.POST("/checkout", controllers.PlaceOrder)
		store.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}
