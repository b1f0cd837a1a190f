// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/engine"
	"github.com/sneakhaus/storefront/internal/interfaces/http/handlers"
	"github.com/sneakhaus/storefront/internal/interfaces/http/middleware"
)

// SetupRoutes wires every API route group against the state engine.
func SetupRoutes(rg *gin.RouterGroup, eng *engine.Engine, cfg *config.Config) {
	SetupProductRoutes(rg, eng)
	SetupCartRoutes(rg, eng)
	SetupWishlistRoutes(rg, eng)
	SetupCheckoutRoutes(rg, eng)
	SetupOrderRoutes(rg, eng, cfg)
	SetupAuthRoutes(rg, eng, cfg)
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, eng *engine.Engine) {
	productHandler := handlers.NewProductHandler(eng.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.POST("/filter", productHandler.FilterProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, eng *engine.Engine) {
	cartHandler := handlers.NewCartHandler(eng.Cart)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// SetupWishlistRoutes sets up wishlist and compare related routes
func SetupWishlistRoutes(rg *gin.RouterGroup, eng *engine.Engine) {
	wishlistHandler := handlers.NewWishlistHandler(eng.Wishlist)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.GET("/:id", wishlistHandler.CheckWishlist)
		wishlist.POST("/:id", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
	}

	compare := rg.Group("/compare")
	{
		compare.GET("", wishlistHandler.GetCompare)
		compare.DELETE("", wishlistHandler.ClearCompare)
		compare.POST("/:id", wishlistHandler.AddToCompare)
		compare.DELETE("/:id", wishlistHandler.RemoveFromCompare)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, eng *engine.Engine) {
	checkoutHandler := handlers.NewCheckoutHandler(eng.Checkout)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", checkoutHandler.GetSummary)
		checkout.PUT("/step", checkoutHandler.SetStep)
		checkout.POST("/validate/shipping", checkoutHandler.ValidateShipping)
		checkout.POST("/validate/payment", checkoutHandler.ValidatePayment)
		checkout.GET("/upsells", checkoutHandler.GetUpsells)
	}
}

// SetupOrderRoutes sets up order related routes
func SetupOrderRoutes(rg *gin.RouterGroup, eng *engine.Engine, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(eng.Orders)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)

		// Status transitions come from the fulfillment side, not shoppers
		protected := orders.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}
	}
}

// SetupAuthRoutes sets up account related routes
func SetupAuthRoutes(rg *gin.RouterGroup, eng *engine.Engine, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(eng.Users, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}
}
