// internal/interfaces/http/handlers/admin_order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/order"
)

// AdminOrderHandler lets an administrative caller drive order progression.
// It goes through the same Advance operation as the simulated fulfillment
// timer; no out-of-sequence status set is exposed.
type AdminOrderHandler struct {
	orders *order.Engine
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(orders *order.Engine) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders}
}

// AdvanceOrder handles PUT /admin/orders/:number/advance
func (h *AdminOrderHandler) AdvanceOrder(c *gin.Context) {
	o, err := h.orders.Advance(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status advanced successfully",
		"data":    o,
	})
}
