// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/checkout"
	"github.com/murkimart/grocery-backend/internal/domain/order"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	sessions *cart.Sessions
	checkout *checkout.Service
	driver   *order.Driver
	notifier notify.Notifier
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *cart.Sessions, checkoutService *checkout.Service, driver *order.Driver, notifier notify.Notifier) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		checkout: checkoutService,
		driver:   driver,
		notifier: notifier,
	}
}

// GetSummary handles GET /checkout
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	userCart := h.sessions.Get(getOrCreateSessionID(c))

	totals, addressText, err := h.checkout.Summary(userCart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No delivery address selected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data": gin.H{
			"totals":  totals,
			"address": addressText,
		},
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userCart := h.sessions.Get(getOrCreateSessionID(c))

	o, err := h.checkout.PlaceOrder(userCart, &req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, checkout.ErrNoAddress):
			h.notifier.Notify("No delivery address found",
				"Please add a delivery address in your Profile first.", notify.SeverityError)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No delivery address selected",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	h.notifier.Notify("Order placed! 🎉", "Your order "+o.Number+" is confirmed.", notify.SeveritySuccess)

	// Kick off the simulated fulfillment progression.
	h.driver.Start(context.Background(), o.Number)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    o,
	})
}
