// internal/interfaces/http/handlers/instant.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/domain/instantorder"
)

// InstantOrderHandler handles the buy-now endpoint
type InstantOrderHandler struct {
	catalog *catalog.Service
	instant *instantorder.Service
}

// NewInstantOrderHandler creates a new instant order handler
func NewInstantOrderHandler(catalogService *catalog.Service, instant *instantorder.Service) *InstantOrderHandler {
	return &InstantOrderHandler{
		catalog: catalogService,
		instant: instant,
	}
}

// BuyNow handles POST /instant-orders/:productId
func (h *InstantOrderHandler) BuyNow(c *gin.Context) {
	product, err := h.catalog.Get(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	result, err := h.instant.BuyNow(*product)
	if err != nil {
		if errors.Is(err, instantorder.ErrNoAddress) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No delivery address found. Please add a delivery address first.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order. Please try again.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    result,
	})
}
