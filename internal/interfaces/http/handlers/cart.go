// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *cart.Sessions
	catalog  *catalog.Service
	notifier notify.Notifier
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *cart.Sessions, catalogService *catalog.Service, notifier notify.Notifier) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  catalogService,
		notifier: notifier,
	}
}

// CartResponse represents the cart with its derived totals
type CartResponse struct {
	Items      []cart.Line `json:"items"`
	CouponCode string      `json:"coupon_code,omitempty"`
	Totals     cart.Totals `json:"totals"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest represents a quantity overwrite
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyCouponRequest represents a coupon application
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartResponse(userCart),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	// Availability guard lives here, not in the engine.
	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	userCart := h.sessions.Get(getOrCreateSessionID(c))
	userCart.AddItem(*product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartResponse(userCart),
	})
}

// UpdateQuantity handles PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userCart := h.sessions.Get(getOrCreateSessionID(c))
	userCart.SetQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(userCart),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))
	userCart.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartResponse(userCart),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))
	userCart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userCart := h.sessions.Get(getOrCreateSessionID(c))

	if err := userCart.ApplyCoupon(req.Code); err != nil {
		if errors.Is(err, cart.ErrInvalidCoupon) {
			h.notifier.Notify("Invalid coupon", "This coupon code is not valid.", notify.SeverityError)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply coupon",
		})
		return
	}

	code, _ := userCart.Coupon()
	h.notifier.Notify("Coupon applied", "Coupon "+code+" applied to your cart.", notify.SeveritySuccess)

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"data":    h.cartResponse(userCart),
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))
	userCart.RemoveCoupon()

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data":    h.cartResponse(userCart),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": userCart.ItemCount(),
		},
	})
}

func (h *CartHandler) cartResponse(userCart *cart.Cart) CartResponse {
	code, _ := userCart.Coupon()
	return CartResponse{
		Items:      userCart.Lines(),
		CouponCode: code,
		Totals:     userCart.Totals(),
	}
}
