// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/address"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/domain/checkout"
	"github.com/murkimart/grocery-backend/internal/domain/instantorder"
	"github.com/murkimart/grocery-backend/internal/domain/order"
	"github.com/murkimart/grocery-backend/internal/interfaces/http/handlers"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
)

// Dependencies carries the owned store instances into route setup. Each store
// is constructed once per application session and injected, never reached for
// as ambient global state.
type Dependencies struct {
	Sessions  *cart.Sessions
	Catalog   *catalog.Service
	Addresses *address.Directory
	Orders    *order.Engine
	Checkout  *checkout.Service
	Instant   *instantorder.Service
	Driver    *order.Driver
	Notifier  notify.Notifier
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Catalog)
	cartHandler := handlers.NewCartHandler(deps.Sessions, deps.Catalog, deps.Notifier)
	addressHandler := handlers.NewAddressHandler(deps.Addresses)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Sessions, deps.Checkout, deps.Driver, deps.Notifier)
	instantHandler := handlers.NewInstantOrderHandler(deps.Catalog, deps.Instant)
	adminOrderHandler := handlers.NewAdminOrderHandler(deps.Orders)

	// Catalog (read-only provider)
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Cart
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", cartHandler.RemoveCoupon)
	}

	// Address book
	addresses := rg.Group("/addresses")
	{
		addresses.GET("", addressHandler.GetAddresses)
		addresses.POST("", addressHandler.CreateAddress)
		addresses.GET("/default", addressHandler.GetDefaultAddress)
		addresses.DELETE("/:id", addressHandler.DeleteAddress)
		addresses.PUT("/:id/select", addressHandler.SelectAddress)
	}

	// Checkout
	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("", checkoutHandler.GetSummary)
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}

	// Orders
	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/current", orderHandler.GetCurrentOrder)
		orders.GET("/:number", orderHandler.GetOrder)
	}

	// Instant "buy now" path, bypassing the cart
	rg.POST("/instant-orders/:productId", instantHandler.BuyNow)

	// Admin override drives the same state machine as the fulfillment timer
	admin := rg.Group("/admin")
	{
		admin.PUT("/orders/:number/advance", adminOrderHandler.AdvanceOrder)
	}
}
