// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/order"
)

// OrderHandler handles order read endpoints
type OrderHandler struct {
	orders *order.Engine
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Engine) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.orders.History(),
	})
}

// GetOrder handles GET /orders/:number
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// GetCurrentOrder handles GET /orders/current
func (h *OrderHandler) GetCurrentOrder(c *gin.Context) {
	o := h.orders.Current()
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No current order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Current order retrieved successfully",
		"data":    o,
	})
}
